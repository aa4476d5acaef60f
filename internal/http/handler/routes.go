package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"exampaper/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// /metrics is only mounted when a gatherer is given.
func RegisterRoutes(app *fiber.App, svc service.PaperService, gatherer prometheus.Gatherer) {
	app.Get("/", Index(svc))

	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := app.Group("/api/v1")
	v1.Get("/prompt/default", DefaultPrompt(svc))
	v1.Post("/extract", ExtractDocument(svc))
	v1.Post("/extract/object", ExtractObject(svc))
	v1.Post("/generate", GeneratePaper(svc))
	v1.Post("/render", RenderPaper(svc))
}
