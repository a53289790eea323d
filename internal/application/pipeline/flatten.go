package pipeline

import (
	"encoding/json"
	"log"
	"math"
	"strconv"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// paramValue is the typed-slot wrapper the client SDK exports around every
// named parameter. Numeric slots sometimes arrive as JSON strings, so the
// slots are decoded loosely and coerced afterwards.
type paramValue struct {
	StringValue any `json:"string_value"`
	IntValue    any `json:"int_value"`
	FloatValue  any `json:"float_value"`
	DoubleValue any `json:"double_value"`
}

type paramEntry struct {
	Key   string     `json:"key"`
	Value paramValue `json:"value"`
}

// extractParamValue picks the first populated slot in the fixed precedence
// string > int > float > double. The precedence is part of the upstream
// contract and must not change.
func extractParamValue(v paramValue) any {
	if v.StringValue != nil {
		if s, ok := v.StringValue.(string); ok {
			return s
		}
	}
	if v.IntValue != nil {
		if n, ok := coerceInt64(v.IntValue); ok {
			return n
		}
	}
	if v.FloatValue != nil {
		if f, ok := coerceFloat64(v.FloatValue); ok {
			return f
		}
	}
	if v.DoubleValue != nil {
		if f, ok := coerceFloat64(v.DoubleValue); ok {
			return f
		}
	}
	return nil
}

func coerceInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

func coerceFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// flattenParams converts the wrapped parameter list into a flat key→value
// map. Entries without a key or without any populated slot are skipped.
func flattenParams(raw json.RawMessage) map[string]any {
	result := map[string]any{}
	if len(raw) == 0 {
		return result
	}

	var entries []paramEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return result
	}
	for _, entry := range entries {
		if entry.Key == "" {
			continue
		}
		if v := extractParamValue(entry.Value); v != nil {
			result[entry.Key] = v
		}
	}
	return result
}

// coerceMapping decodes a jsonb column into a string map. A string payload
// is parsed one more level (some exports double-encode the nested objects).
// A payload that still is not an object yields an empty map plus the raw
// text, so a bad export stays visible instead of vanishing.
func coerceMapping(raw json.RawMessage) (map[string]any, string) {
	if len(raw) == 0 {
		return map[string]any{}, ""
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return map[string]any{}, string(raw)
	}
	if s, ok := v.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			return map[string]any{}, s
		}
		v = inner
	}
	if m, ok := v.(map[string]any); ok {
		return m, ""
	}
	return map[string]any{}, string(raw)
}

func mapString(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	}
	return ""
}

func mapFloatPtr(m map[string]any, key string) *float64 {
	if f, ok := coerceFloat64OrNil(m[key]); ok {
		return &f
	}
	return nil
}

func coerceFloat64OrNil(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return coerceFloat64(v)
}

func paramInt64Ptr(params map[string]any, key string) *int64 {
	if v, ok := params[key]; ok {
		if n, ok := coerceInt64(v); ok {
			return &n
		}
	}
	return nil
}

func paramFloat64Ptr(params map[string]any, key string) *float64 {
	if v, ok := params[key]; ok {
		if f, ok := coerceFloat64(v); ok {
			return &f
		}
	}
	return nil
}

func paramFloat64(params map[string]any, key string) float64 {
	if p := paramFloat64Ptr(params, key); p != nil {
		return *p
	}
	return 0
}

func paramStr(params map[string]any, key string) string {
	if s, ok := params[key].(string); ok {
		return s
	}
	return ""
}

// Flatten converts raw warehouse rows into flat events. It runs before the
// stage list because it changes the row type; it logs its own start/end and
// reports a diagnostic like any other stage. A record that cannot be
// flattened cleanly keeps whatever fields were recovered and the batch
// continues.
func Flatten(rc *RunContext, raws []entities.RawEvent) ([]*entities.Event, Diagnostic) {
	log.Printf("▶️ Running flatten...")
	diag := Diagnostic{Stage: "flatten", RowsIn: len(raws)}

	rows := make([]*entities.Event, 0, len(raws))
	for i := range raws {
		rows = append(rows, flattenRow(&raws[i]))
	}

	diag.RowsOut = len(rows)
	log.Printf("✅ flatten done (%d → %d rows)", len(raws), len(rows))
	return rows, diag
}

func flattenRow(raw *entities.RawEvent) *entities.Event {
	params := flattenParams(raw.EventParams)
	userProps := flattenParams(raw.UserProperties)
	device, deviceRaw := coerceMapping(raw.Device)
	geo, geoRaw := coerceMapping(raw.Geo)
	appInfo, appInfoRaw := coerceMapping(raw.AppInfo)

	// Undecodable payloads ride along for diagnosis.
	if deviceRaw != "" {
		params["device_unparsed"] = deviceRaw
	}
	if geoRaw != "" {
		params["geo_unparsed"] = geoRaw
	}
	if appInfoRaw != "" {
		params["app_info_unparsed"] = appInfoRaw
	}

	e := &entities.Event{
		RowID:          raw.ID,
		UserID:         raw.UserPseudoID,
		EventName:      raw.EventName,
		Platform:       raw.Platform,
		StreamID:       raw.StreamID,
		EventTimestamp: raw.EventTimestamp,
		Params:         params,
		UserProps:      userProps,

		DeviceCategory:         mapString(device, "category"),
		MobileBrandName:        mapString(device, "mobile_brand_name"),
		MobileModelName:        mapString(device, "mobile_model_name"),
		MobileMarketingName:    mapString(device, "mobile_marketing_name"),
		OperatingSystem:        mapString(device, "operating_system"),
		OperatingSystemVersion: mapString(device, "operating_system_version"),
		DeviceLanguage:         mapString(device, "language"),
		IsLimitedAdTracking:    mapString(device, "is_limited_ad_tracking"),
		TimeZoneOffsetSeconds:  mapFloatPtr(device, "time_zone_offset_seconds"),

		Country: mapString(geo, "country"),
		Region:  mapString(geo, "region"),
		City:    mapString(geo, "city"),

		AppVersion:    mapString(appInfo, "version"),
		InstallSource: mapString(appInfo, "install_source"),
		InstallStore:  mapString(appInfo, "install_store"),

		CharacterName: paramStr(params, "character_name"),
		CurrentTier:   paramInt64Ptr(params, "current_tier"),
		CurrentQI:     paramInt64Ptr(params, "current_qi"),

		MiniGameRI:     paramStr(params, "mini_game_ri"),
		MiniGameName:   paramStr(params, "mini_game_name"),
		MenuName:       paramStr(params, "menu_name"),
		AnsweredWrong:  paramFloat64Ptr(params, "answered_wrong"),
		SpentTo:        paramStr(params, "spent_to"),
		WhereItsSpent:  paramStr(params, "where_its_spent"),
		WhereItsEarned: paramStr(params, "where_its_earned"),
		HowItsEarned:   paramStr(params, "how_its_earned"),
		CurrencyName:   paramStr(params, "currency_name"),
		EarnedAmount:   paramFloat64(params, "earned_amount"),
		SpentAmount:    paramFloat64(params, "spent_amount"),

		AdNetwork:        paramStr(params, "ad_network"),
		AdUnitID:         paramStr(params, "ad_unit_id"),
		AdInstance:       paramStr(params, "ad_instance"),
		AdID:             paramStr(params, "ad_id"),
		AdPlacement:      paramStr(params, "ad_placement"),
		AdRewardType:     paramStr(params, "ad_reward_type"),
		AdErrorCode:      paramInt64Ptr(params, "ad_error_code"),
		TimeSpentSeconds: paramFloat64Ptr(params, "time_spent"),

		// No session window exists until the reconstructor runs.
		SessionDurationSeconds: math.NaN(),
	}

	if raw.EventPreviousTimestamp != nil {
		e.PreviousTimestamp = *raw.EventPreviousTimestamp
	}
	if raw.UserFirstTouchTimestamp != nil {
		e.FirstTouchTimestamp = *raw.UserFirstTouchTimestamp
	}
	if raw.EventServerTimestampOffset != nil {
		e.ServerTimestampOffset = *raw.EventServerTimestampOffset
	}
	if raw.IsActiveUser != nil {
		e.IsActiveUser = *raw.IsActiveUser
	}
	if key := paramInt64Ptr(params, "ga_session_id"); key != nil {
		e.SessionKey = *key
	}
	return e
}
