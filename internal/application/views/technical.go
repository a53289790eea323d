package views

import (
	"log"
	"sort"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

var technicalEventNames = map[string]bool{
	"App Exception":  true,
	"Ad Load Failed": true,
}

// CreateTechnicalEvents builds the stability view: exceptions and ad-load
// failures ordered per user and session so a failure can be read next to
// what the player was doing just before it.
func CreateTechnicalEvents(rows []*entities.Event) []entities.TechnicalEvent {
	kept := make([]*entities.Event, 0, len(rows))
	for _, e := range rows {
		if technicalEventNames[e.EventName] {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		log.Printf("✅ technical_events created with 0 records")
		return []entities.TechnicalEvent{}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].UserID != kept[j].UserID {
			return kept[i].UserID < kept[j].UserID
		}
		if kept[i].SessionKey != kept[j].SessionKey {
			return kept[i].SessionKey < kept[j].SessionKey
		}
		if kept[i].EventTimestamp != kept[j].EventTimestamp {
			return kept[i].EventTimestamp < kept[j].EventTimestamp
		}
		return kept[i].RowID < kept[j].RowID
	})

	result := make([]entities.TechnicalEvent, 0, len(kept))
	for _, e := range kept {
		result = append(result, entities.TechnicalEvent{
			EventDatetime: e.EventDatetime,
			EventName:     e.EventName,
			UserID:        e.UserID,
			SessionKey:    e.SessionKey,

			AppVersion:             e.AppVersion,
			MobileMarketingName:    e.MobileMarketingName,
			OperatingSystemVersion: e.OperatingSystemVersion,

			PrevEventName: e.PrevEventName,
			PrevEventMenu: e.PrevEventMenu,

			AdNetwork:   e.AdNetwork,
			AdInstance:  e.AdInstance,
			AdID:        e.AdID,
			AdErrorCode: e.AdErrorCode,

			ServerDelaySeconds: e.ServerDelaySeconds,
		})
	}

	log.Printf("✅ technical_events created with %d records", len(result))
	return result
}
