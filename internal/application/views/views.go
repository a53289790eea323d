package views

import (
	"log"
	"sort"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// Skip lists for "last meaningful event" selection. Names are the mapped
// display names because the views run after the value-map stage.
//
// sessionSkipEvents hides engagement noise from a session's last event;
// userSkipEvents does the same across a user's whole history (currency
// snapshots stay visible there).
var sessionSkipEvents = map[string]bool{
	"User Engagement":         true,
	"Screen Viewed":           true,
	"Earned Virtual Currency": true,
	"Firebase Campaign":       true,
	"App Removed":             true,
	"App Data Cleared":        true,
	"App Updated":             true,
	"Starting Currencies":     true,
}

var userSkipEvents = map[string]bool{
	"App Removed":         true,
	"App Data Cleared":    true,
	"App Updated":         true,
	"User Engagement":     true,
	"Screen Viewed":       true,
	"Firebase Campaign":   true,
	"Starting Currencies": true,
}

// latestEvent returns the latest row of a group by (time, arrival order).
func latestEvent(group []*entities.Event) *entities.Event {
	var best *entities.Event
	for _, e := range group {
		if best == nil ||
			e.EventTimestamp > best.EventTimestamp ||
			(e.EventTimestamp == best.EventTimestamp && e.RowID > best.RowID) {
			best = e
		}
	}
	return best
}

// lastMeaningfulEvent picks the latest event not in the skip set, falling
// back to the literal latest event when the whole group is noise — the
// selection never comes back empty for a non-empty group.
func lastMeaningfulEvent(group []*entities.Event, skip map[string]bool) *entities.Event {
	var best *entities.Event
	for _, e := range group {
		if skip[e.EventName] {
			continue
		}
		if best == nil ||
			e.EventTimestamp > best.EventTimestamp ||
			(e.EventTimestamp == best.EventTimestamp && e.RowID > best.RowID) {
			best = e
		}
	}
	if best == nil {
		return latestEvent(group)
	}
	return best
}

// groupBySession partitions rows by (user, session key), dropping rows with
// no session context.
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

// sortedSessionIDs returns the group keys in deterministic order.
func sortedSessionIDs(groups map[entities.SessionID][]*entities.Event) []entities.SessionID {
	ids := make([]entities.SessionID, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].UserID != ids[j].UserID {
			return ids[i].UserID < ids[j].UserID
		}
		return ids[i].SessionKey < ids[j].SessionKey
	})
	return ids
}

// CreateViews derives the six analytical views from the enriched event
// table. Each view degrades to an empty table on unusable input so one
// broken view never blocks the other five.
func CreateViews(rows []*entities.Event) *entities.Views {
	v := &entities.Views{
		BySessions:      CreateBySessions(rows),
		ByUsers:         CreateByUsers(rows),
		ByQuestions:     CreateByQuestions(rows),
		ByDate:          CreateByDate(rows),
		ByAds:           CreateByAds(rows),
		TechnicalEvents: CreateTechnicalEvents(rows),
	}
	log.Printf("✅ All split views created: %v", v.RowCounts())
	return v
}
