package pipeline

import (
	"testing"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEvents(t *testing.T) {
	rc := NewRunContext()
	rc.StartDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rc.CountryAllowlist = []string{"Turkey"}
	rc.UserDenylist = []string{"tester-1"}
	rc.MinAppVersion = "1.2.0"

	ts := func(t time.Time) int64 { return t.UnixMicro() }
	inRange := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	keep := &entities.Event{EventTimestamp: ts(inRange), Country: "Turkey", UserID: "u1", AppVersion: "1.3.0"}
	tooOld := &entities.Event{EventTimestamp: ts(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)), Country: "Turkey", UserID: "u1", AppVersion: "1.3.0"}
	wrongCountry := &entities.Event{EventTimestamp: ts(inRange), Country: "Germany", UserID: "u1", AppVersion: "1.3.0"}
	denied := &entities.Event{EventTimestamp: ts(inRange), Country: "Turkey", UserID: "tester-1", AppVersion: "1.3.0"}
	oldVersion := &entities.Event{EventTimestamp: ts(inRange), Country: "Turkey", UserID: "u1", AppVersion: "1.1.9"}
	noVersion := &entities.Event{EventTimestamp: ts(inRange), Country: "Turkey", UserID: "u1"}

	out, _, err := FilterEvents(rc, []*entities.Event{keep, tooOld, wrongCountry, denied, oldVersion, noVersion})
	require.NoError(t, err)

	// rows without an app version survive the version filter
	assert.ElementsMatch(t, []*entities.Event{keep, noVersion}, out)
}

func TestFilterEventsNoFilters(t *testing.T) {
	rows := []*entities.Event{
		{EventTimestamp: 1, UserID: "u1"},
		{EventTimestamp: 2, UserID: "u2"},
	}
	out, _, err := FilterEvents(NewRunContext(), rows)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
