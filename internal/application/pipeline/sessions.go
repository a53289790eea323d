package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

// sessionStartEvent marks the explicit session boundary in the raw log.
const sessionStartEvent = "session_start"

// trailingNoiseEvents are stamped by the client SDK with the previous
// session's identifier; counting them as session activity corrupts the
// session end.
var trailingNoiseEvents = map[string]bool{
	"app_remove":     true,
	"app_update":     true,
	"app_clear_data": true,
}

// sortedSessionCopy returns the rows sorted by (user, session key, time,
// arrival) without touching the caller's order. The RowID tie-break keeps
// the sort stable across reruns.
func sortedSessionCopy(rows []*entities.Event) []*entities.Event {
	sorted := make([]*entities.Event, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if a.SessionKey != b.SessionKey {
			return a.SessionKey < b.SessionKey
		}
		if a.EventTimestamp != b.EventTimestamp {
			return a.EventTimestamp < b.EventTimestamp
		}
		return a.RowID < b.RowID
	})
	return sorted
}

// groupBySession partitions rows into (user, session key) groups. Events
// without a session key carry no usable session context and are left out,
// exactly like a missing group key in the upstream aggregation.
func groupBySession(rows []*entities.Event) map[entities.SessionID][]*entities.Event {
	groups := map[entities.SessionID][]*entities.Event{}
	for _, e := range rows {
		if e.SessionKey == 0 {
			continue
		}
		groups[e.SessionID()] = append(groups[e.SessionID()], e)
	}
	return groups
}

// SessionDurations reconstructs session windows with the explicit-marker
// strategy: duration = latest non-noise event minus the earliest
// session_start marker. A group without a start marker keeps duration NaN —
// an explicit missing value, never zero. Start/end times cover the literal
// group extent. Runs before the value-map stage, so it matches raw event
// names.
func SessionDurations(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	var problems []string

	type window struct {
		duration   float64
		start, end time.Time
	}

	groups := groupBySession(rows)
	windows := make(map[entities.SessionID]window, len(groups))
	for id, group := range groups {
		var markerStart, noiseEnd time.Time
		start, end := group[0].EventDatetime, group[0].EventDatetime

		for _, e := range group {
			if e.EventDatetime.Before(start) {
				start = e.EventDatetime
			}
			if e.EventDatetime.After(end) {
				end = e.EventDatetime
			}
			if e.EventName == sessionStartEvent {
				if markerStart.IsZero() || e.EventDatetime.Before(markerStart) {
					markerStart = e.EventDatetime
				}
			}
			if !trailingNoiseEvents[e.EventName] {
				if e.EventDatetime.After(noiseEnd) {
					noiseEnd = e.EventDatetime
				}
			}
		}

		w := window{duration: math.NaN(), start: start, end: end}
		if !markerStart.IsZero() && !noiseEnd.IsZero() {
			w.duration = utils.Round(noiseEnd.Sub(markerStart).Seconds(), 3)
			if w.duration < 0 {
				// A start marker after every non-noise event means the group
				// is nothing but stale-stamped rows.
				problems = append(problems, "session "+id.UserID+" has no valid window; duration set missing")
				w.duration = math.NaN()
			}
		}
		windows[id] = w
	}

	for _, e := range rows {
		if e.SessionKey == 0 {
			continue
		}
		w := windows[e.SessionID()]
		e.SessionDurationSeconds = w.duration
		e.SessionStart = w.start
		e.SessionEnd = w.end
	}

	// Event duration = gap to the next event in the same session, 0 for the
	// session's final event.
	sorted := sortedSessionCopy(rows)
	for i, e := range sorted {
		if e.SessionKey == 0 {
			continue
		}
		if i+1 < len(sorted) && sorted[i+1].SessionID() == e.SessionID() {
			e.EventDurationSeconds = utils.Round(sorted[i+1].EventDatetime.Sub(e.EventDatetime).Seconds(), 3)
		} else {
			e.EventDurationSeconds = 0
		}
	}
	return rows, problems, nil
}
