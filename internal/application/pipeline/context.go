package pipeline

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// RunContext carries the parameters of one pipeline run. It is constructed
// once per run and passed down explicitly; stages never reach for ambient
// state.
type RunContext struct {
	RunID uuid.UUID

	// StartDate is the earliest event date to include. Zero means the whole
	// log.
	StartDate time.Time

	// CountryAllowlist keeps only events from the listed countries when
	// non-empty.
	CountryAllowlist []string

	// UserDenylist drops every event of the listed users (internal testers).
	UserDenylist []string

	// MinAppVersion drops events from older app versions, compared
	// component-wise on the dotted version tuple.
	MinAppVersion string

	// FallbackOffsetHours substitutes for a missing device timezone offset
	// when deriving local time.
	FallbackOffsetHours float64
}

// NewRunContext builds a run context with a fresh run id.
func NewRunContext() *RunContext {
	return &RunContext{RunID: uuid.New()}
}

// Diagnostic is the visible outcome of one stage: row-count delta, the
// data-quality problems encountered, and the stage error if it failed
// outright. Failures degrade (the runner keeps the previous rows) instead of
// aborting the run.
type Diagnostic struct {
	Stage    string   `json:"stage"`
	RowsIn   int      `json:"rows_in"`
	RowsOut  int      `json:"rows_out"`
	Problems []string `json:"problems,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// StageFunc transforms the evolving event table. Returned problems are
// data-quality violations that degraded to missing/zero values; a non-nil
// error means the stage could not run at all.
type StageFunc func(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error)

// Stage pairs a stage function with its log name.
type Stage struct {
	Name string
	Fn   StageFunc
}

// Stages returns the enrichment stages in execution order. Each stage
// consumes the output of the previous one; the order is part of the
// contract (durations run on raw event names, views on mapped names).
func Stages() []Stage {
	return []Stage{
		{"filter_events", FilterEvents},
		{"transform_datetime", TransformDatetime},
		{"time_features", TimeFeatures},
		{"session_durations", SessionDurations},
		{"forward_fill_progress", ForwardFillProgress},
		{"question_index", QuestionIndexCleanup},
		{"cumulative_index", CumulativeQuestionIndex},
		{"minigame_tokens", MiniGameTokens},
		{"currency_categories", CurrencyCategories},
		{"apply_value_maps", ApplyValueMaps},
		{"question_address", QuestionAddress},
		{"wrong_answer_zeros", WrongAnswerZeros},
		{"previous_event", PreviousEvent},
	}
}

// Run applies the stages in order, logging a start/end message with the
// row-count delta for every stage. A failing stage is recorded in its
// diagnostic and skipped, leaving the table as the previous stage produced
// it, so one broken enrichment never takes down the run.
func Run(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []Diagnostic) {
	stages := Stages()
	diags := make([]Diagnostic, 0, len(stages))

	for _, stage := range stages {
		log.Printf("▶️ Running %s...", stage.Name)
		in := len(rows)

		out, problems, err := stage.Fn(rc, rows)
		diag := Diagnostic{Stage: stage.Name, RowsIn: in, Problems: problems}
		if err != nil {
			diag.RowsOut = in
			diag.Error = err.Error()
			log.Printf("❌ %s failed: %v (keeping %d rows)", stage.Name, err, in)
		} else {
			rows = out
			diag.RowsOut = len(rows)
			log.Printf("✅ %s done (%d → %d rows)", stage.Name, in, len(rows))
		}
		for _, p := range problems {
			log.Printf("⚠️ %s: %s", stage.Name, p)
		}
		diags = append(diags, diag)
	}
	return rows, diags
}
