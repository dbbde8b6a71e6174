package api

import (
	"errors"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/logger"
	"jeju-tour-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type TourHandler struct {
	resolver *usecase.Resolver
	logger   logger.Logger
}

func NewTourHandler(resolver *usecase.Resolver, log logger.Logger) *TourHandler {
	return &TourHandler{resolver: resolver, logger: log}
}

type verifyCodeRequest struct {
	AccessCode string `json:"access_code"`
}

type errorResponse struct {
	Error     string           `json:"error"`
	Code      entity.ErrorCode `json:"code"`
	RawOutput string           `json:"raw_output,omitempty"`
}

func (h *TourHandler) GetTours(c *fiber.Ctx) error {
	env, err := h.resolver.Resolve(c.UserContext(), usecase.TourQuery{
		Location:   c.Query("location"),
		AccessCode: c.Query("access_code"),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(env)
}

func (h *TourHandler) ContinueTours(c *fiber.Ctx) error {
	env, err := h.resolver.Continue(c.UserContext(), usecase.ContinueQuery{
		AccessCode:         c.Query("access_code"),
		PreviousResponseID: c.Query("previous_response_id"),
		Condition:          c.Query("condition"),
		Location:           c.Query("location"),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(env)
}

func (h *TourHandler) GetDestinations(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.resolver.Destinations())
}

func (h *TourHandler) VerifyCode(c *fiber.Ctx) error {
	var req verifyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error: "invalid request body",
			Code:  entity.ErrCodeInvalidRequest,
		})
	}
	return c.Status(fiber.StatusOK).JSON(h.resolver.VerifyCode(req.AccessCode))
}

// fail maps domain errors to HTTP status codes.
func (h *TourHandler) fail(c *fiber.Ctx, err error) error {
	var perr *entity.ProviderError
	switch {
	case errors.Is(err, entity.ErrConversationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: entity.ErrConversationNotFound.Error(), Code: entity.ErrCodeInvalidRequest})
	case errors.Is(err, entity.ErrProviderUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(errorResponse{Error: err.Error(), Code: entity.ErrCodeProviderDisabled})
	case errors.As(err, &perr):
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:     perr.Error(),
			Code:      perr.Code(),
			RawOutput: perr.RawOutput,
		})
	}
	h.logger.WithError(err).Error("unhandled error", map[string]interface{}{"path": c.Path()})
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error", Code: entity.ErrCodeInternal})
}
