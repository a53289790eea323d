package routes

import (
	"github.com/nocsaren/emoji-oracle-analytics/internal/application/pipeline"
	"github.com/nocsaren/emoji-oracle-analytics/internal/application/usecases"
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/repositories"
	"github.com/nocsaren/emoji-oracle-analytics/internal/infrastructure/cache"
	"github.com/nocsaren/emoji-oracle-analytics/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, resultCache *cache.Cache, newRunContext func() *pipeline.RunContext) usecases.PipelineUseCase {
	// View payloads are large and mostly static between refreshes
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(etag.New())

	// Repositories
	eventRepo := repositories.NewEventRepository(db)
	viewRepo := repositories.NewViewRepository(db)

	// Health check doubles as a warehouse liveness probe
	app.Get("/health", func(c *fiber.Ctx) error {
		total, err := eventRepo.CountEvents(c.Context())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":     "healthy",
			"version":    "1.0.0",
			"raw_events": total,
		})
	})

	// Use Cases
	pipelineUseCase := usecases.NewPipelineUseCase(eventRepo, viewRepo, resultCache)

	// Handlers
	analyticsHandler := handlers.NewAnalyticsHandler(pipelineUseCase, newRunContext)

	// Routes
	app.Get("/views", analyticsHandler.GetViews)
	app.Get("/views/:name", analyticsHandler.GetView)
	app.Get("/kpis", analyticsHandler.GetKPIs)
	app.Get("/funnel", analyticsHandler.GetFunnel)
	app.Get("/diagnostics", analyticsHandler.GetDiagnostics)
	app.Post("/refresh", analyticsHandler.Refresh)

	return pipelineUseCase
}
