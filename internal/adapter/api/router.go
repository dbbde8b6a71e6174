package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	AllowedOrigin string
	StaticPrefix  string
	StaticDir     string
	Version       string
	Environment   string
	AccessLog     bool
}

func SetupRouter(app *fiber.App, handler *TourHandler, opts RouterOptions) {
	// Middleware
	if opts.AccessLog {
		app.Use(fiberlogger.New())
	}
	// cors refuses credentials together with a wildcard origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigin,
		AllowCredentials: opts.AllowedOrigin != "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": opts.Version,
			"env":     opts.Environment,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if opts.StaticDir != "" {
		app.Static(opts.StaticPrefix, opts.StaticDir)
	}

	api := app.Group("/api")
	api.Get("/tours", handler.GetTours)
	api.Get("/tours/continue", handler.ContinueTours)
	api.Get("/destinations", handler.GetDestinations)
	api.Post("/verify-code", handler.VerifyCode)
}
