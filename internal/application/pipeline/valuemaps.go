package pipeline

import (
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// ValueMapEntry binds one row field to a raw→display value map. The entries
// are pure data; ApplyValueMaps is the only logic that touches them.
type ValueMapEntry struct {
	Field  string
	Values map[string]string
}

// fieldAccessor reads and writes one mappable string field of an event.
type fieldAccessor struct {
	get func(*entities.Event) string
	set func(*entities.Event, string)
}

var fieldAccessors = map[string]fieldAccessor{
	"event_name": {
		func(e *entities.Event) string { return e.EventName },
		func(e *entities.Event, v string) { e.EventName = v },
	},
	"mini_game_ri": {
		func(e *entities.Event) string { return e.MiniGameRI },
		func(e *entities.Event, v string) { e.MiniGameRI = v },
	},
	"menu_name": {
		func(e *entities.Event) string { return e.MenuName },
		func(e *entities.Event, v string) { e.MenuName = v },
	},
	"character_name": {
		func(e *entities.Event) string { return e.CharacterName },
		func(e *entities.Event, v string) { e.CharacterName = v },
	},
	"mini_game_name": {
		func(e *entities.Event) string { return e.MiniGameName },
		func(e *entities.Event, v string) { e.MiniGameName = v },
	},
	"where_its_earned": {
		func(e *entities.Event) string { return e.WhereItsEarned },
		func(e *entities.Event, v string) { e.WhereItsEarned = v },
	},
	"currency_name": {
		func(e *entities.Event) string { return e.CurrencyName },
		func(e *entities.Event, v string) { e.CurrencyName = v },
	},
	"how_its_earned": {
		func(e *entities.Event) string { return e.HowItsEarned },
		func(e *entities.Event, v string) { e.HowItsEarned = v },
	},
	"where_its_spent": {
		func(e *entities.Event) string { return e.WhereItsSpent },
		func(e *entities.Event, v string) { e.WhereItsSpent = v },
	},
	"spent_to": {
		func(e *entities.Event) string { return e.SpentTo },
		func(e *entities.Event, v string) { e.SpentTo = v },
	},
	"doll_name": {
		func(e *entities.Event) string { return e.DollName },
		func(e *entities.Event, v string) { e.DollName = v },
	},
	"shop_consumable_item": {
		func(e *entities.Event) string { return e.ShopConsumableItem },
		func(e *entities.Event, v string) { e.ShopConsumableItem = v },
	},
	"shop_permanent_item": {
		func(e *entities.Event) string { return e.ShopPermanentItem },
		func(e *entities.Event, v string) { e.ShopPermanentItem = v },
	},
	"ts_weekday": {
		func(e *entities.Event) string { return e.Weekday },
		func(e *entities.Event, v string) { e.Weekday = v },
	},
	"ad_shown_where": {
		func(e *entities.Event) string { return e.ParamString("ad_shown_where") },
		func(e *entities.Event, v string) { e.Params["ad_shown_where"] = v },
	},
}

// ApplyValueMaps runs the generic rename pass over every value-map entry.
// Unmapped values are kept as-is, so a new upstream value flows through
// unchanged instead of disappearing.
func ApplyValueMaps(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	var problems []string
	for _, entry := range ValueMaps() {
		acc, ok := fieldAccessors[entry.Field]
		if !ok {
			problems = append(problems, "no accessor for mapped field "+entry.Field)
			continue
		}
		for _, e := range rows {
			raw := acc.get(e)
			if raw == "" {
				continue
			}
			if mapped, ok := entry.Values[raw]; ok {
				acc.set(e, mapped)
			}
		}
	}
	return rows, problems, nil
}
