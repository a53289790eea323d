package kpi

import (
	"log"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

// CalculateKPIs computes the headline report from the enriched event table
// and the views derived from it. The denominators deliberately mix sources:
// session counts and the duration mean come from the by_sessions view (which
// excludes bounce sessions), while retention and the date range cover every
// event.
func CalculateKPIs(rows []*entities.Event, v *entities.Views) entities.KPIReport {
	if len(rows) == 0 {
		log.Printf("⚠️ kpis: no rows, returning empty report")
		return entities.KPIReport{}
	}

	var (
		from, to     time.Time
		users        = map[string]bool{}
		firstSeen    = map[string]time.Time{}
		eventDates   = map[time.Time]bool{}
		sessionDates = map[time.Time]bool{}
		adsViewed    int
	)
	for _, e := range rows {
		if e.EventDate.IsZero() {
			continue
		}
		if from.IsZero() || e.EventDate.Before(from) {
			from = e.EventDate
		}
		if to.IsZero() || e.EventDate.After(to) {
			to = e.EventDate
		}
		eventDates[e.EventDate] = true
		if e.UserID != "" {
			users[e.UserID] = true
			if first, ok := firstSeen[e.UserID]; !ok || e.EventDate.Before(first) {
				firstSeen[e.UserID] = e.EventDate
			}
		}
		if !e.SessionStart.IsZero() {
			sessionDates[utils.NormalizeDate(e.SessionStart)] = true
		}
		if e.EventName == "Ad Impression" {
			adsViewed++
		}
	}

	totalUsers := len(v.ByUsers)
	totalSessions := len(v.BySessions)

	var durationSum float64
	for _, s := range v.BySessions {
		durationSum += s.SessionDurationSeconds
	}
	avgDurationMinutes := 0.0
	if totalSessions > 0 {
		avgDurationMinutes = utils.Round(durationSum/float64(totalSessions)/60, 2)
	}

	report := entities.KPIReport{
		"From":                               from.Format("2006-01-02"),
		"To":                                 to.Format("2006-01-02"),
		"Total Days":                         utils.DaysBetween(from, to),
		"Total Users":                        totalUsers,
		"Users per Day":                      ratio2(float64(totalUsers), float64(len(eventDates))),
		"Total Sessions":                     totalSessions,
		"Sessions per Day":                   ratio2(float64(totalSessions), float64(len(sessionDates))),
		"Sessions per User":                  ratio2(float64(totalSessions), float64(len(users))),
		"Average Session Duration (minutes)": avgDurationMinutes,
		"Total Ads Viewed":                   adsViewed,
		"1-Day Retention %":                  RetentionRate(rows, firstSeen, 1),
		"7-Day Retention %":                  RetentionRate(rows, firstSeen, 7),
		"30-Day Retention %":                 RetentionRate(rows, firstSeen, 30),
	}

	log.Printf("📊 KPIs calculated: %d users, %d sessions", totalUsers, totalSessions)
	return report
}

// ratio2 divides with a zero-safe denominator, rounded to 2 decimals.
func ratio2(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return utils.Round(numerator/denominator, 2)
}

// RetentionRate returns the percentage of users active exactly `days` days
// after their own first event, rounded to 2 decimals. Exact-day retention,
// not rolling: a user seen on day 8 but not day 7 does not count toward
// 7-day retention.
func RetentionRate(rows []*entities.Event, firstSeen map[string]time.Time, days int) float64 {
	if len(firstSeen) == 0 {
		return 0
	}
	retained := map[string]bool{}
	for _, e := range rows {
		if e.UserID == "" || e.EventDate.IsZero() {
			continue
		}
		first, ok := firstSeen[e.UserID]
		if !ok {
			continue
		}
		if utils.DaysBetween(first, e.EventDate) == days {
			retained[e.UserID] = true
		}
	}
	return utils.Round(float64(len(retained))/float64(len(firstSeen))*100, 2)
}
