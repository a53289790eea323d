package kpi

import (
	"log"
	"math"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// funnelStages is the onboarding milestone sequence, in the order players
// encounter them.
var funnelStages = []struct {
	Key   string
	Label string
}{
	{"pp_accepted", "Privacy Policy Accepted"},
	{"video_start", "Welcome Video Started"},
	{"video_finished", "Welcome Video Finished"},
	{"entered", "Met T"},
	{"shown", "Slot Machine Shown"},
	{"opened", "Help Opened"},
	{"return", "Help Returned"},
	{"closed", "Help Closed"},
	{"drag", "Answer Dragged"},
	{"answered_first_question", "Answered First Question"},
	{"answered_second_question", "Answered Second Question"},
	{"answered_third_question", "Answered Third Question"},
	{"saw_mi", "Met Mi"},
	{"passed_10_min", "Passed 10 Minutes"},
	{"answered_ten_questions", "Answered Ten Questions"},
	{"second_session_started", "Second Session Started"},
	{"second_day_active", "Second Day Active"},
	{"tutorial_completed", "Tutorial Completed"},
}

// BuildFunnel counts, per onboarding milestone, how many users ever reached
// it, with a normal-approximation confidence interval on the count scale.
// confidence selects the z value: 0.95 and 0.90 are supported, anything
// else falls back to 95%.
func BuildFunnel(users []entities.UserProfile, confidence float64) []entities.FunnelStage {
	total := len(users)
	result := make([]entities.FunnelStage, 0, len(funnelStages))
	for _, stage := range funnelStages {
		count := 0
		for i := range users {
			count += users[i].FunnelFlag(stage.Key)
		}
		s := entities.FunnelStage{Key: stage.Key, Label: stage.Label, Count: count}
		if total > 0 {
			s.Proportion = float64(count) / float64(total)
			s.LowerBound, s.UpperBound = ComputeCI(count, total, confidence)
		}
		result = append(result, s)
	}
	log.Printf("📊 Funnel built: %d stages over %d users", len(result), total)
	return result
}

// ComputeCI returns a normal-approximation confidence interval for a funnel
// count, on the count scale, clamped to [0, total].
func ComputeCI(count, total int, confidence float64) (lower, upper float64) {
	if total == 0 {
		return 0, 0
	}
	z := 1.96
	if confidence == 0.90 {
		z = 1.645
	}
	p := float64(count) / float64(total)
	se := math.Sqrt(p * (1 - p) / float64(total))
	lower = (p - z*se) * float64(total)
	upper = (p + z*se) * float64(total)
	if lower < 0 {
		lower = 0
	}
	if upper > float64(total) {
		upper = float64(total)
	}
	return lower, upper
}
