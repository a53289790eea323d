package kpi

import (
	"fmt"
	"testing"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kpiEvent(user string, key int64, name string, date time.Time, duration float64) *entities.Event {
	return &entities.Event{
		UserID:                 user,
		SessionKey:             key,
		EventName:              name,
		EventDate:              date,
		EventTimestamp:         date.UnixMicro(),
		SessionStart:           date.Add(12 * time.Hour),
		SessionDurationSeconds: duration,
	}
}

func summaries(durations map[int64]float64) []entities.SessionSummary {
	var out []entities.SessionSummary
	for key, d := range durations {
		out = append(out, entities.SessionSummary{SessionKey: key, SessionDurationSeconds: d})
	}
	return out
}

func TestCalculateKPIs(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	rows := []*entities.Event{
		kpiEvent("u1", 100, "Session Started", day1, 100),
		kpiEvent("u1", 100, "Ad Impression", day1, 100),
		kpiEvent("u2", 200, "Session Started", day1, 10),
		kpiEvent("u1", 300, "Session Started", day2, 600),
	}
	v := &entities.Views{
		// the session view has already dropped the 10s bounce
		BySessions: summaries(map[int64]float64{100: 100, 300: 600}),
		ByUsers:    []entities.UserProfile{{UserID: "u1"}, {UserID: "u2"}},
	}

	report := CalculateKPIs(rows, v)
	require.NotEmpty(t, report)

	assert.Equal(t, "2025-03-10", report["From"])
	assert.Equal(t, "2025-03-11", report["To"])
	assert.Equal(t, 1, report["Total Days"])
	assert.Equal(t, 2, report["Total Users"])
	assert.Equal(t, 1.0, report["Users per Day"])
	// session counts come from the view, so the bounce is not a session here
	assert.Equal(t, 2, report["Total Sessions"])
	assert.Equal(t, 1.0, report["Sessions per Day"])
	assert.Equal(t, 1.0, report["Sessions per User"])
	// (100 + 600) / 2 sessions, in minutes
	assert.Equal(t, 5.83, report["Average Session Duration (minutes)"])
	assert.Equal(t, 1, report["Total Ads Viewed"])
	// u1 is active exactly one day after first contact, u2 is not
	assert.Equal(t, 50.0, report["1-Day Retention %"])
	assert.Equal(t, 0.0, report["7-Day Retention %"])
}

func TestCalculateKPIsExcludesBouncesFromDurationMean(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []*entities.Event{
		kpiEvent("u1", 100, "Session Started", day, 100),
		kpiEvent("u2", 200, "Session Started", day, 10),
	}
	v := &entities.Views{
		BySessions: summaries(map[int64]float64{100: 100}),
		ByUsers:    []entities.UserProfile{{UserID: "u1"}, {UserID: "u2"}},
	}

	report := CalculateKPIs(rows, v)
	// mean over the session view only: 100s → 1.67 minutes, not dragged
	// down to 0.92 by the 10s bounce
	assert.Equal(t, 1.67, report["Average Session Duration (minutes)"])
	assert.Equal(t, 1, report["Total Sessions"])
}

func TestCalculateKPIsEmpty(t *testing.T) {
	assert.Empty(t, CalculateKPIs(nil, &entities.Views{}))
}

func TestRetentionRateExactDay(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	var rows []*entities.Event
	firstSeen := map[string]time.Time{}
	for i := 0; i < 10; i++ {
		user := fmt.Sprintf("u%d", i)
		firstSeen[user] = day1
		rows = append(rows, kpiEvent(user, 100, "Session Started", day1, 60))
	}
	// 4 users return exactly on day 1, one more on day 2 (does not count)
	for i := 0; i < 4; i++ {
		user := fmt.Sprintf("u%d", i)
		rows = append(rows, kpiEvent(user, 200, "Session Started", day1.AddDate(0, 0, 1), 60))
	}
	rows = append(rows, kpiEvent("u9", 300, "Session Started", day1.AddDate(0, 0, 2), 60))

	assert.Equal(t, 40.0, RetentionRate(rows, firstSeen, 1))
	assert.Equal(t, 10.0, RetentionRate(rows, firstSeen, 2))
	assert.Equal(t, 0.0, RetentionRate(rows, firstSeen, 7))
}
