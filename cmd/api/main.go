package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"exampaper/docs"
	"exampaper/internal/config"
	handlers "exampaper/internal/http/handler"
	"exampaper/internal/http/middleware"
	"exampaper/internal/llm"
	"exampaper/internal/loader"
	"exampaper/internal/otel"
	"exampaper/internal/paper"
	"exampaper/internal/service"
	"exampaper/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Exam Paper API
// @version 1.0
// @description Turns a syllabus PDF into a model question paper using a local language model.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	// One HTTP client for the model service; the gateway bounds each call, not the client.
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	backend, err := llm.NewBackend(cfg.LLM, httpClient)
	if err != nil {
		log.Fatalf("failed to configure model backend: %v", err)
	}
	gateway := llm.NewGateway(backend, cfg.LLM.Model, llm.WithTimeout(cfg.LLM.Timeout()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	paperMetrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	opts := []service.Option{service.WithMetrics(paperMetrics)}

	// Object storage is an optional second input source.
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		opts = append(opts, service.WithStorage(objStore))
	}

	paperSvc := service.NewPaperService(loader.NewLoader(), gateway, paper.NewRenderer(), opts...)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.MaxUploadMB << 20,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, cfg.Location()))
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, paperSvc, reg)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Port
		slog.Info("server starting", "addr", addr, "llm_provider", cfg.LLM.Provider, "llm_model", cfg.LLM.Model, "storage", cfg.MinIO.Enabled())
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		slog.Info("shutting down")
		if err := app.ShutdownWithContext(sctx); err != nil {
			slog.Error("server shutdown", "error", err)
		}
		return shutdownTracing(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
