package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"gorm.io/gorm"
)

type ViewRepository interface {
	// SaveViews replaces the stored view tables with the given run's output.
	// Persistence is full-overwrite: the warehouse keeps exactly one run.
	SaveViews(ctx context.Context, runID uuid.UUID, views *entities.Views) error
	// SaveReports replaces the stored KPI report and funnel for the run.
	SaveReports(ctx context.Context, runID uuid.UUID, kpis entities.KPIReport, funnel []entities.FunnelStage) error
}

type viewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db}
}

// buildViewRows marshals the views into persistable rows in view-name order,
// so reruns over identical input insert identical row sequences.
func buildViewRows(runID uuid.UUID, views *entities.Views, now time.Time) ([]entities.ViewRow, error) {
	tables := views.Tables()
	rowCounts := views.RowCounts()

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]entities.ViewRow, 0, len(names))
	for _, name := range names {
		payload, err := json.Marshal(tables[name])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal view %s: %w", name, err)
		}
		rows = append(rows, entities.ViewRow{
			RunID:     runID,
			ViewName:  name,
			RowCount:  rowCounts[name],
			Payload:   payload,
			CreatedAt: now,
		})
	}
	return rows, nil
}

func (r *viewRepository) SaveViews(ctx context.Context, runID uuid.UUID, views *entities.Views) error {
	rows, err := buildViewRows(runID, views, time.Now().UTC())
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM analytics_views").Error; err != nil {
			return fmt.Errorf("failed to clear previous views: %w", err)
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save views: %w", err)
		}
		return nil
	})
}

func (r *viewRepository) SaveReports(ctx context.Context, runID uuid.UUID, kpis entities.KPIReport, funnel []entities.FunnelStage) error {
	kpiPayload, err := json.Marshal(kpis)
	if err != nil {
		return fmt.Errorf("failed to marshal kpi report: %w", err)
	}
	funnelPayload, err := json.Marshal(funnel)
	if err != nil {
		return fmt.Errorf("failed to marshal funnel: %w", err)
	}

	now := time.Now().UTC()
	rows := []entities.ReportRow{
		{RunID: runID, Kind: "kpis", Payload: kpiPayload, CreatedAt: now},
		{RunID: runID, Kind: "funnel", Payload: funnelPayload, CreatedAt: now},
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM analytics_reports").Error; err != nil {
			return fmt.Errorf("failed to clear previous reports: %w", err)
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save reports: %w", err)
		}
		return nil
	})
}
