package entities

import (
	"encoding/json"
	"sort"
	"time"
)

// DateBucket is one row of the by_date view: a calendar-day rollup plus a
// wide, sparse pivot of per-ad-network/unit/instance event counts. The pivot
// maps serialize inline with their column prefixes so the row keeps the
// wide-table shape consumers expect; absent combinations are zero.
type DateBucket struct {
	EventDate          time.Time `json:"event_date"`
	Weekday            string    `json:"weekday"`
	UniqueUsers        int       `json:"unique_users"`
	NewUsers           int       `json:"new_users"`
	AndroidUsers       int       `json:"android_users"`
	IOSUsers           int       `json:"ios_users"`
	UninstallCount     int       `json:"uninstall_count"`
	UniqueSessions     int       `json:"unique_sessions"`
	AdsWatched         int       `json:"ads_watched"`
	QuestionsStarted   int       `json:"questions_started"`
	QuestionsCompleted int       `json:"questions_completed"`

	AdNetworkCounts  map[string]int `json:"-"`
	AdUnitCounts     map[string]int `json:"-"`
	AdInstanceCounts map[string]int `json:"-"`
}

// MarshalJSON flattens the pivot maps into prefixed columns, in sorted key
// order so identical input marshals byte-identically.
func (d DateBucket) MarshalJSON() ([]byte, error) {
	type alias DateBucket
	base, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}

	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}
	addPivot(out, "nwk_", d.AdNetworkCounts)
	addPivot(out, "unt_", d.AdUnitCounts)
	addPivot(out, "ins_", d.AdInstanceCounts)

	keys := make([]string, 0, len(out))
	for k := range out {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, _ := json.Marshal(k)
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, out[k]...)
	}
	buf = append(buf, '}')
	return buf, nil
}

func addPivot(out map[string]json.RawMessage, prefix string, counts map[string]int) {
	for k, v := range counts {
		b, _ := json.Marshal(v)
		out[prefix+k] = b
	}
}
