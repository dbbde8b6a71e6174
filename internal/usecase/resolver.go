package usecase

import (
	"context"
	"strings"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/domain/repository"
	"jeju-tour-api/internal/logger"
	"jeju-tour-api/internal/metrics"
)

type TourQuery struct {
	Location   string
	AccessCode string
}

type ContinueQuery struct {
	AccessCode         string
	PreviousResponseID string
	Condition          string
	// Location only picks the static refined catalog; the AI path gets its
	// context from PreviousResponseID.
	Location string
}

// Resolver decides per request between the static catalog and AI delegation.
type Resolver struct {
	access  *AccessGuard
	catalog repository.CatalogSource
	ai      *Delegation
	logger  logger.Logger
}

func NewResolver(access *AccessGuard, catalog repository.CatalogSource, ai *Delegation, log logger.Logger) *Resolver {
	return &Resolver{access: access, catalog: catalog, ai: ai, logger: log}
}

func (r *Resolver) Resolve(ctx context.Context, q TourQuery) (entity.Envelope, error) {
	location := strings.TrimSpace(q.Location)

	if !r.access.Privileged(q.AccessCode) {
		metrics.TourRequests.WithLabelValues("initial", "static").Inc()
		r.logger.Debug("serving static catalog", map[string]interface{}{"location": location})
		return entity.StaticEnvelope(r.catalog.Lookup(location).WithCommonFilters()), nil
	}

	metrics.TourRequests.WithLabelValues("initial", "ai").Inc()
	r.logger.Info("delegating tour lookup", map[string]interface{}{"location": location})
	return r.ai.Initial(ctx, location)
}

// Continue narrows an earlier AI answer. Without privilege it serves the
// fixed refined catalog and ignores the previous id and condition. With
// privilege the inputs are forwarded as given, empty or not.
func (r *Resolver) Continue(ctx context.Context, q ContinueQuery) (entity.Envelope, error) {
	if !r.access.Privileged(q.AccessCode) {
		metrics.TourRequests.WithLabelValues("continue", "static").Inc()
		return entity.StaticEnvelope(r.catalog.Refined(q.Location).WithCommonFilters()), nil
	}

	metrics.TourRequests.WithLabelValues("continue", "ai").Inc()
	prevID := strings.TrimSpace(q.PreviousResponseID)
	condition := strings.TrimSpace(q.Condition)
	r.logger.Info("delegating tour continuation", map[string]interface{}{
		"previousId": prevID,
		"condition":  condition,
	})
	return r.ai.Continue(ctx, prevID, condition)
}

func (r *Resolver) Destinations() []entity.Destination {
	return r.catalog.Destinations()
}

func (r *Resolver) VerifyCode(code string) Verification {
	return r.access.Verify(code)
}
