package views

import (
	"log"
	"sort"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

// missingDays returns how many calendar days inside the covered range have
// no bucket. Gaps usually mean a hole in the warehouse export, worth
// flagging before anyone reads a suspiciously quiet week.
func missingDays(dates []time.Time) int {
	if len(dates) < 2 {
		return 0
	}
	return len(utils.GenerateDateRange(dates[0], dates[len(dates)-1])) - len(dates)
}

// CreateByDate builds the calendar-day rollup, including the sparse ad
// network/unit/instance pivots. A combination that never occurs on a day
// simply has no column for that day.
func CreateByDate(rows []*entities.Event) []entities.DateBucket {
	byDate := map[time.Time][]*entities.Event{}
	for _, e := range rows {
		if e.EventDate.IsZero() {
			continue
		}
		byDate[e.EventDate] = append(byDate[e.EventDate], e)
	}
	if len(byDate) == 0 {
		log.Printf("⚠️ by_date: no rows with an event date")
		return []entities.DateBucket{}
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	if gaps := missingDays(dates); gaps > 0 {
		log.Printf("⚠️ by_date: %d calendar days in range have no events", gaps)
	}

	result := make([]entities.DateBucket, 0, len(dates))
	for _, date := range dates {
		group := byDate[date]

		b := entities.DateBucket{
			EventDate:        date,
			Weekday:          group[0].Weekday,
			AdNetworkCounts:  map[string]int{},
			AdUnitCounts:     map[string]int{},
			AdInstanceCounts: map[string]int{},
		}

		users := map[string]bool{}
		newUsers := map[string]bool{}
		androidUsers := map[string]bool{}
		iosUsers := map[string]bool{}
		sessions := map[entities.SessionID]bool{}

		for _, e := range group {
			if e.UserID != "" {
				users[e.UserID] = true
				switch e.OperatingSystem {
				case "ANDROID":
					androidUsers[e.UserID] = true
				case "IOS":
					iosUsers[e.UserID] = true
				}
			}
			if e.SessionKey != 0 {
				sessions[e.SessionID()] = true
			}

			switch e.EventName {
			case "First Open":
				if e.UserID != "" {
					newUsers[e.UserID] = true
				}
			case "App Removed":
				b.UninstallCount++
			case "Ad Rewarded":
				b.AdsWatched++
			case "Question Started":
				b.QuestionsStarted++
			case "Question Completed":
				b.QuestionsCompleted++
			}

			if e.AdNetwork != "" {
				b.AdNetworkCounts[e.AdNetwork]++
			}
			if e.AdUnitID != "" {
				b.AdUnitCounts[e.AdUnitID]++
			}
			if e.AdInstance != "" {
				b.AdInstanceCounts[e.AdInstance]++
			}
		}

		b.UniqueUsers = len(users)
		b.NewUsers = len(newUsers)
		b.AndroidUsers = len(androidUsers)
		b.IOSUsers = len(iosUsers)
		b.UniqueSessions = len(sessions)

		result = append(result, b)
	}

	log.Printf("✅ by_date created with %d records", len(result))
	return result
}
