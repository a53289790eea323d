package pipeline

import (
	"testing"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaypartLabel(t *testing.T) {
	cases := map[int]string{
		0:  "Gece",
		5:  "Gece",
		6:  "Sabah",
		10: "Sabah",
		11: "Öğle",
		13: "Öğle",
		14: "Öğleden Sonra",
		16: "Öğleden Sonra",
		17: "Akşam",
		22: "Akşam",
		23: "Gece",
	}
	for hour, want := range cases {
		assert.Equal(t, want, daypartLabel(hour), "hour %d", hour)
	}
}

func TestTransformDatetime(t *testing.T) {
	offset := 10800.0
	e := &entities.Event{
		EventTimestamp:        1740000005000000,
		PreviousTimestamp:     1740000000000000,
		ServerTimestampOffset: 1500,
		TimeZoneOffsetSeconds: &offset,
		Params:                map[string]any{"engagement_time_msec": int64(2500)},
	}

	rows, problems, err := TransformDatetime(NewRunContext(), []*entities.Event{e})
	require.NoError(t, err)
	assert.Empty(t, problems)

	got := rows[0]
	assert.Equal(t, time.UnixMicro(1740000005000000).UTC(), got.EventDatetime)
	assert.Equal(t, time.UTC, got.EventDate.Location())
	assert.Equal(t, 0, got.EventDate.Hour())
	assert.Equal(t, 5.0, got.TimeDelta)
	assert.Equal(t, 1.5, got.ServerDelaySeconds)
	assert.Equal(t, 3.0, got.TimeZoneOffsetHours)
	assert.Equal(t, 2.5, got.EngagementTimeSeconds)
}

func TestTimeFeatures(t *testing.T) {
	rc := NewRunContext()
	rc.FallbackOffsetHours = 3

	offsetSeconds := 10800.0
	// Saturday 2025-03-15 21:30 UTC
	saturday := time.Date(2025, 3, 15, 21, 30, 0, 0, time.UTC)
	withOffset := &entities.Event{
		EventDatetime:         saturday,
		TimeZoneOffsetSeconds: &offsetSeconds,
		TimeZoneOffsetHours:   3,
	}
	withoutOffset := &entities.Event{EventDatetime: time.Date(2025, 3, 17, 8, 0, 0, 0, time.UTC)}

	_, _, err := TimeFeatures(rc, []*entities.Event{withOffset, withoutOffset})
	require.NoError(t, err)

	assert.Equal(t, "Saturday", withOffset.Weekday)
	assert.Equal(t, "Hafta Sonu", withOffset.WeekendFlag)
	// 21:30 UTC + 3h local offset wraps into Gece
	assert.Equal(t, 0, withOffset.Hour)
	assert.Equal(t, "Gece", withOffset.Daypart)

	assert.Equal(t, "Monday", withoutOffset.Weekday)
	assert.Equal(t, "Hafta İçi", withoutOffset.WeekendFlag)
	// missing device offset falls back to the configured hours
	assert.Equal(t, 11, withoutOffset.Hour)
	assert.Equal(t, "Öğle", withoutOffset.Daypart)
}
