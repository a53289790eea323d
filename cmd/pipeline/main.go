package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/application/pipeline"
	"github.com/nocsaren/emoji-oracle-analytics/internal/infrastructure/cache"
	"github.com/nocsaren/emoji-oracle-analytics/internal/infrastructure/database"
	"github.com/nocsaren/emoji-oracle-analytics/internal/interfaces/http/middleware"
	"github.com/nocsaren/emoji-oracle-analytics/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

// newRunContext builds a run context from the environment. Filters are read
// per run so a config change only needs a refresh, not a restart.
func newRunContext() *pipeline.RunContext {
	rc := pipeline.NewRunContext()

	if raw := os.Getenv("START_DATE"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			log.Printf("⚠️ Invalid START_DATE %q, ignoring: %v", raw, err)
		} else {
			rc.StartDate = t
		}
	}
	rc.CountryAllowlist = splitList(os.Getenv("COUNTRY_ALLOWLIST"))
	rc.UserDenylist = splitList(os.Getenv("USER_DENYLIST"))
	rc.MinAppVersion = os.Getenv("MIN_APP_VERSION")

	if raw := os.Getenv("TZ_FALLBACK_OFFSET_HOURS"); raw != "" {
		offset, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("⚠️ Invalid TZ_FALLBACK_OFFSET_HOURS %q, ignoring: %v", raw, err)
		} else {
			rc.FallbackOffsetHours = offset
		}
	}

	return rc
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	resultCache := cache.New()

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second, // refresh recomputes synchronously
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	pipelineUseCase := routes.SetupRoutes(app, db, resultCache, newRunContext)

	// Compute the first result before taking traffic
	log.Println("📊 Running initial pipeline...")
	if _, err := pipelineUseCase.Run(context.Background(), newRunContext()); err != nil {
		log.Printf("⚠️ Initial pipeline run failed: %v", err)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
