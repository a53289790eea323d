package entities

// KPIReport maps KPI names to scalar values for reporting consumers.
type KPIReport map[string]any

// FunnelStage is one milestone of the onboarding funnel with its user count
// and count-scale confidence interval bounds (clamped to [0, total]).
type FunnelStage struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// Views bundles the six analytical tables a pipeline run produces.
type Views struct {
	BySessions      []SessionSummary  `json:"by_sessions"`
	ByUsers         []UserProfile     `json:"by_users"`
	ByQuestions     []QuestionAttempt `json:"by_questions"`
	ByDate          []DateBucket      `json:"by_date"`
	ByAds           []AdEvent         `json:"by_ads"`
	TechnicalEvents []TechnicalEvent  `json:"technical_events"`
}

// Tables returns the views keyed by their public names.
func (v *Views) Tables() map[string]any {
	return map[string]any{
		"by_sessions":      v.BySessions,
		"by_users":         v.ByUsers,
		"by_questions":     v.ByQuestions,
		"by_date":          v.ByDate,
		"by_ads":           v.ByAds,
		"technical_events": v.TechnicalEvents,
	}
}

// RowCounts returns the row count of each view, for stage logging and the
// table listing endpoint.
func (v *Views) RowCounts() map[string]int {
	return map[string]int{
		"by_sessions":      len(v.BySessions),
		"by_users":         len(v.ByUsers),
		"by_questions":     len(v.ByQuestions),
		"by_date":          len(v.ByDate),
		"by_ads":           len(v.ByAds),
		"technical_events": len(v.TechnicalEvents),
	}
}
