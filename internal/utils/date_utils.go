package utils

import "time"

// NormalizeDate truncates a timestamp to midnight UTC. Date bucketing always
// works on UTC dates so day boundaries stay deterministic.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b, after
// normalizing both to midnight UTC.
func DaysBetween(a, b time.Time) int {
	return int(NormalizeDate(b).Sub(NormalizeDate(a)).Hours() / 24)
}

// GenerateDateRange returns "YYYY-MM-DD" strings for every date from from to
// to, inclusive.
func GenerateDateRange(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return []string{}
	}

	from = NormalizeDate(from)
	to = NormalizeDate(to)

	days := DaysBetween(from, to) + 1
	result := make([]string, days)
	current := from
	for i := 0; i < days; i++ {
		result[i] = current.Format("2006-01-02")
		current = current.AddDate(0, 0, 1)
	}
	return result
}
