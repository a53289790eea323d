package pipeline

import (
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

// TransformDatetime derives the absolute timestamp fields from the raw
// epoch values and applies the unit conversions: epoch µs → UTC time,
// ms durations → seconds, tz offset seconds → hours.
func TransformDatetime(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	for _, e := range rows {
		e.EventDatetime = time.UnixMicro(e.EventTimestamp).UTC()
		e.EventDate = utils.NormalizeDate(e.EventDatetime)

		if e.PreviousTimestamp > 0 {
			e.TimeDelta = float64(e.EventTimestamp-e.PreviousTimestamp) / 1e6
		}
		e.ServerDelaySeconds = float64(e.ServerTimestampOffset) / 1000

		if e.TimeZoneOffsetSeconds != nil {
			e.TimeZoneOffsetHours = *e.TimeZoneOffsetSeconds / 3600
		}
		if msec := paramFloat64Ptr(e.Params, "engagement_time_msec"); msec != nil {
			e.EngagementTimeSeconds = *msec / 1000
		}
	}
	return rows, nil, nil
}

// daypartLabel buckets a local hour into the named dayparts. Boundary hours
// belong to the later bucket: 6 is already Sabah, 11 already Öğle, 14
// already Öğleden Sonra, 17 already Akşam; 23 wraps into Gece.
func daypartLabel(hour int) string {
	switch {
	case hour < 6 || hour > 22:
		return "Gece"
	case hour < 11:
		return "Sabah"
	case hour < 14:
		return "Öğle"
	case hour < 17:
		return "Öğleden Sonra"
	default:
		return "Akşam"
	}
}

// TimeFeatures derives the wall-clock features. The weekday comes from the
// UTC timestamp (deterministic near day boundaries); local time is UTC plus
// the device offset; the weekend flag is a function of the weekday name.
func TimeFeatures(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	for _, e := range rows {
		e.Weekday = e.EventDatetime.UTC().Weekday().String()

		offset := e.TimeZoneOffsetHours
		if e.TimeZoneOffsetSeconds == nil {
			offset = rc.FallbackOffsetHours
		}
		e.LocalTime = e.EventDatetime.Add(time.Duration(offset * float64(time.Hour)))
		e.Hour = e.LocalTime.Hour()
		e.Daypart = daypartLabel(e.Hour)

		if e.Weekday == "Saturday" || e.Weekday == "Sunday" {
			e.WeekendFlag = "Hafta Sonu"
		} else {
			e.WeekendFlag = "Hafta İçi"
		}
	}
	return rows, nil, nil
}
