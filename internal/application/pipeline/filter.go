package pipeline

import (
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

// FilterEvents applies the run-context filters: reference start date,
// country allow-list, user deny-list, and minimum app version. Rows without
// an app version survive the version filter — dropping them would also drop
// lifecycle events the client stamps without app metadata.
func FilterEvents(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	allow := map[string]bool{}
	for _, c := range rc.CountryAllowlist {
		allow[c] = true
	}
	deny := map[string]bool{}
	for _, u := range rc.UserDenylist {
		deny[u] = true
	}

	out := make([]*entities.Event, 0, len(rows))
	for _, e := range rows {
		if !rc.StartDate.IsZero() {
			if time.UnixMicro(e.EventTimestamp).UTC().Before(rc.StartDate) {
				continue
			}
		}
		if len(allow) > 0 && !allow[e.Country] {
			continue
		}
		if deny[e.UserID] {
			continue
		}
		if rc.MinAppVersion != "" && e.AppVersion != "" {
			if utils.CompareVersions(e.AppVersion, rc.MinAppVersion) < 0 {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil, nil
}
