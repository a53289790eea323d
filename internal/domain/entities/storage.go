package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ViewRow is one persisted view table for one pipeline run, stored as a
// jsonb document per view.
type ViewRow struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	RunID     uuid.UUID       `json:"run_id" gorm:"column:run_id;type:uuid;index"`
	ViewName  string          `json:"view_name" gorm:"column:view_name;index"`
	RowCount  int             `json:"row_count" gorm:"column:row_count"`
	Payload   json.RawMessage `json:"payload" gorm:"column:payload;type:jsonb"`
	CreatedAt time.Time       `json:"created_at" gorm:"column:created_at"`
}

func (ViewRow) TableName() string {
	return "analytics_views"
}

// ReportRow is one persisted KPI/funnel report for one pipeline run.
type ReportRow struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	RunID     uuid.UUID       `json:"run_id" gorm:"column:run_id;type:uuid;index"`
	Kind      string          `json:"kind" gorm:"column:kind"`
	Payload   json.RawMessage `json:"payload" gorm:"column:payload;type:jsonb"`
	CreatedAt time.Time       `json:"created_at" gorm:"column:created_at"`
}

func (ReportRow) TableName() string {
	return "analytics_reports"
}
