package views

import (
	"log"
	"sort"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

var adLifecycleEvents = map[string]bool{
	"Ad Loaded":      true,
	"Ad Closed":      true,
	"Ad Displayed":   true,
	"Ad Rewarded":    true,
	"Ad Load Failed": true,
	"Ad Clicked":     true,
}

// CreateByAds builds the ad lifecycle view. Missing ad metadata gets an
// explicit placeholder so downstream group-bys never collapse on empty
// strings.
func CreateByAds(rows []*entities.Event) []entities.AdEvent {
	kept := make([]*entities.Event, 0, len(rows))
	for _, e := range rows {
		if adLifecycleEvents[e.EventName] {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		log.Printf("⚠️ by_ads: no ad lifecycle events")
		return []entities.AdEvent{}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].EventTimestamp != kept[j].EventTimestamp {
			return kept[i].EventTimestamp < kept[j].EventTimestamp
		}
		return kept[i].RowID < kept[j].RowID
	})

	result := make([]entities.AdEvent, 0, len(kept))
	for _, e := range kept {
		result = append(result, entities.AdEvent{
			EventDatetime: e.EventDatetime,
			SessionKey:    e.SessionKey,
			UserID:        e.UserID,
			EventName:     e.EventName,

			AdID:         e.AdID,
			AdUnitID:     e.AdUnitID,
			AdNetwork:    orPlaceholder(e.AdNetwork, "Unknown"),
			AdPlacement:  orPlaceholder(e.AdPlacement, "Missing"),
			AdRewardType: orPlaceholder(e.AdRewardType, "Missing"),
			AdInstance:   orPlaceholder(e.AdInstance, "Unknown"),
			AdErrorCode:  e.AdErrorCode,

			CharacterName:   e.CharacterName,
			CurrentTier:     e.CurrentTier,
			QuestionIndex:   e.QuestionIndex,
			QuestionAddress: e.QuestionAddress,

			Weekday:            e.Weekday,
			Daypart:            e.Daypart,
			AppVersion:         e.AppVersion,
			Country:            e.Country,
			OperatingSystem:    e.OperatingSystem,
			ServerDelaySeconds: e.ServerDelaySeconds,

			PrevEventName: e.PrevEventName,
			PrevEventMenu: e.PrevEventMenu,
		})
	}

	log.Printf("✅ by_ads created with %d records", len(result))
	return result
}

func orPlaceholder(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
