package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/nocsaren/emoji-oracle-analytics/internal/application/pipeline"
	"github.com/nocsaren/emoji-oracle-analytics/internal/application/usecases"
)

// AnalyticsHandler exposes the latest pipeline run over HTTP. Every read
// endpoint serves from the cached result; POST /refresh is the only way to
// recompute.
type AnalyticsHandler struct {
	pipelineUseCase usecases.PipelineUseCase
	newRunContext   func() *pipeline.RunContext
}

func NewAnalyticsHandler(pipelineUseCase usecases.PipelineUseCase, newRunContext func() *pipeline.RunContext) *AnalyticsHandler {
	return &AnalyticsHandler{pipelineUseCase, newRunContext}
}

func (h *AnalyticsHandler) latest(c *fiber.Ctx) (*usecases.PipelineResult, error) {
	result, found := h.pipelineUseCase.Latest()
	if !found {
		return nil, c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "no pipeline run available yet, POST /refresh to compute one",
		})
	}
	return result, nil
}

// GetViews lists the view names and row counts of the latest run.
func (h *AnalyticsHandler) GetViews(c *fiber.Ctx) error {
	result, err := h.latest(c)
	if result == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"run_id":     result.RunID,
		"created_at": result.FinishedAt,
		"views":      result.Views.RowCounts(),
	})
}

// GetView returns one full view table by name.
func (h *AnalyticsHandler) GetView(c *fiber.Ctx) error {
	result, err := h.latest(c)
	if result == nil {
		return err
	}
	name := c.Params("name")
	table, ok := result.Views.Tables()[name]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown view: " + name,
		})
	}
	return c.JSON(fiber.Map{
		"run_id": result.RunID,
		"view":   name,
		"rows":   table,
	})
}

// GetKPIs returns the headline KPI report of the latest run.
func (h *AnalyticsHandler) GetKPIs(c *fiber.Ctx) error {
	result, err := h.latest(c)
	if result == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"run_id": result.RunID,
		"kpis":   result.KPIs,
	})
}

// GetFunnel returns the onboarding funnel of the latest run.
func (h *AnalyticsHandler) GetFunnel(c *fiber.Ctx) error {
	result, err := h.latest(c)
	if result == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"run_id": result.RunID,
		"funnel": result.Funnel,
	})
}

// GetDiagnostics returns the per-stage diagnostics of the latest run.
func (h *AnalyticsHandler) GetDiagnostics(c *fiber.Ctx) error {
	result, err := h.latest(c)
	if result == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"run_id":      result.RunID,
		"raw_rows":    result.RawRows,
		"started_at":  result.StartedAt,
		"finished_at": result.FinishedAt,
		"diagnostics": result.Diagnostics,
	})
}

// Refresh recomputes the whole pipeline synchronously and returns the new
// run's summary.
func (h *AnalyticsHandler) Refresh(c *fiber.Ctx) error {
	rc := h.newRunContext()
	result, err := h.pipelineUseCase.Run(c.Context(), rc)
	if err != nil {
		log.Printf("❌ Refresh failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"run_id":      result.RunID,
		"raw_rows":    result.RawRows,
		"views":       result.Views.RowCounts(),
		"finished_at": result.FinishedAt,
	})
}
