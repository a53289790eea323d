package usecases

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nocsaren/emoji-oracle-analytics/internal/application/kpi"
	"github.com/nocsaren/emoji-oracle-analytics/internal/application/pipeline"
	"github.com/nocsaren/emoji-oracle-analytics/internal/application/views"
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/repositories"
	"github.com/nocsaren/emoji-oracle-analytics/internal/infrastructure/cache"
)

const (
	latestResultKey = "pipeline:latest"
	resultTTL       = 24 * time.Hour

	funnelConfidence = 0.95
)

// PipelineResult is the complete output of one batch run.
type PipelineResult struct {
	RunID       uuid.UUID             `json:"run_id"`
	StartedAt   time.Time             `json:"started_at"`
	FinishedAt  time.Time             `json:"finished_at"`
	RawRows     int                   `json:"raw_rows"`
	Views       *entities.Views       `json:"views"`
	KPIs        entities.KPIReport    `json:"kpis"`
	Funnel      []entities.FunnelStage `json:"funnel"`
	Diagnostics []pipeline.Diagnostic `json:"diagnostics"`
}

type PipelineUseCase interface {
	// Run executes the full batch: fetch, flatten, enrich, views, KPIs,
	// persist, cache. A fetch failure is fatal; a persistence failure is
	// logged and the in-memory result still stands.
	Run(ctx context.Context, rc *pipeline.RunContext) (*PipelineResult, error)
	// Latest returns the most recent run's result, if one is cached.
	Latest() (*PipelineResult, bool)
}

type pipelineUseCase struct {
	eventRepo repositories.EventRepository
	viewRepo  repositories.ViewRepository
	cache     *cache.Cache
}

func NewPipelineUseCase(eventRepo repositories.EventRepository, viewRepo repositories.ViewRepository, c *cache.Cache) PipelineUseCase {
	return &pipelineUseCase{eventRepo, viewRepo, c}
}

func (uc *pipelineUseCase) Run(ctx context.Context, rc *pipeline.RunContext) (*PipelineResult, error) {
	startedAt := time.Now().UTC()
	log.Printf("🚀 Pipeline run %s starting", rc.RunID)

	raw, err := uc.eventRepo.FetchEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline run %s: %w", rc.RunID, err)
	}
	log.Printf("📊 Fetched %d raw events", len(raw))

	rows, flattenDiag := pipeline.Flatten(rc, raw)
	rows, diags := pipeline.Run(rc, rows)
	diags = append([]pipeline.Diagnostic{flattenDiag}, diags...)

	v := views.CreateViews(rows)
	report := kpi.CalculateKPIs(rows, v)
	funnel := kpi.BuildFunnel(v.ByUsers, funnelConfidence)

	result := &PipelineResult{
		RunID:       rc.RunID,
		StartedAt:   startedAt,
		FinishedAt:  time.Now().UTC(),
		RawRows:     len(raw),
		Views:       v,
		KPIs:        report,
		Funnel:      funnel,
		Diagnostics: diags,
	}

	// The run's value is the in-memory result; losing the warehouse copy
	// only costs the next reader a refresh.
	if err := uc.viewRepo.SaveViews(ctx, rc.RunID, v); err != nil {
		log.Printf("⚠️ Failed to persist views: %v", err)
	}
	if err := uc.viewRepo.SaveReports(ctx, rc.RunID, report, funnel); err != nil {
		log.Printf("⚠️ Failed to persist reports: %v", err)
	}

	uc.cache.Set(latestResultKey, result, resultTTL)
	log.Printf("✅ Pipeline run %s finished in %s", rc.RunID, result.FinishedAt.Sub(startedAt).Round(time.Millisecond))
	return result, nil
}

func (uc *pipelineUseCase) Latest() (*PipelineResult, bool) {
	value, found := uc.cache.Get(latestResultKey)
	if !found {
		return nil, false
	}
	result, ok := value.(*PipelineResult)
	return result, ok
}
