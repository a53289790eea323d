package pipeline

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractParamValuePrecedence(t *testing.T) {
	// string wins over every numeric slot
	v := extractParamValue(paramValue{StringValue: "hello", IntValue: float64(3), DoubleValue: float64(1.5)})
	assert.Equal(t, "hello", v)

	// int wins over float and double
	v = extractParamValue(paramValue{IntValue: float64(7), FloatValue: float64(2.5)})
	assert.Equal(t, int64(7), v)

	// numeric slots arriving as strings still coerce
	v = extractParamValue(paramValue{IntValue: "42"})
	assert.Equal(t, int64(42), v)

	v = extractParamValue(paramValue{DoubleValue: "3.25"})
	assert.Equal(t, 3.25, v)

	assert.Nil(t, extractParamValue(paramValue{}))
}

func TestFlattenParams(t *testing.T) {
	raw := json.RawMessage(`[
		{"key":"character_name","value":{"string_value":"billy"}},
		{"key":"current_tier","value":{"int_value":2}},
		{"key":"","value":{"string_value":"dropped"}},
		{"key":"empty","value":{}}
	]`)
	params := flattenParams(raw)
	assert.Equal(t, "billy", params["character_name"])
	assert.Equal(t, int64(2), params["current_tier"])
	assert.NotContains(t, params, "")
	assert.NotContains(t, params, "empty")

	assert.Empty(t, flattenParams(nil))
	assert.Empty(t, flattenParams(json.RawMessage(`not json`)))
}

func TestCoerceMappingDoubleEncoded(t *testing.T) {
	direct, raw := coerceMapping(json.RawMessage(`{"country":"Turkey"}`))
	assert.Equal(t, "Turkey", direct["country"])
	assert.Empty(t, raw)

	// some exports wrap the object in a JSON string one more time
	doubled, raw := coerceMapping(json.RawMessage(`"{\"country\":\"Turkey\"}"`))
	assert.Equal(t, "Turkey", doubled["country"])
	assert.Empty(t, raw)

	empty, raw := coerceMapping(nil)
	assert.Empty(t, empty)
	assert.Empty(t, raw)
}

func TestCoerceMappingKeepsMalformedPayload(t *testing.T) {
	// a string that is not JSON comes back raw instead of disappearing
	m, raw := coerceMapping(json.RawMessage(`"not an object"`))
	assert.Empty(t, m)
	assert.Equal(t, "not an object", raw)

	m, raw = coerceMapping(json.RawMessage(`[1,2]`))
	assert.Empty(t, m)
	assert.Equal(t, "[1,2]", raw)
}

func TestFlattenRowKeepsMalformedDevice(t *testing.T) {
	raw := entities.RawEvent{
		ID:           7,
		EventName:    "session_start",
		UserPseudoID: "user-a",
		Device:       json.RawMessage(`"{broken json"`),
	}

	rows, _ := Flatten(NewRunContext(), []entities.RawEvent{raw})
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].OperatingSystem)
	assert.Equal(t, "{broken json", rows[0].ParamString("device_unparsed"))
}

func TestFlattenRow(t *testing.T) {
	raw := entities.RawEvent{
		ID:             11,
		EventName:      "question_started",
		EventTimestamp: 1740000000000000,
		UserPseudoID:   "user-a",
		EventParams: json.RawMessage(`[
			{"key":"ga_session_id","value":{"int_value":1740000000}},
			{"key":"character_name","value":{"string_value":"t"}},
			{"key":"current_tier","value":{"int_value":1}},
			{"key":"current_qi","value":{"int_value":5}}
		]`),
		Device: json.RawMessage(`{"operating_system":"ANDROID","time_zone_offset_seconds":10800}`),
		Geo:    json.RawMessage(`{"country":"Turkey"}`),
	}

	rows, diag := Flatten(NewRunContext(), []entities.RawEvent{raw})
	require.Len(t, rows, 1)
	assert.Equal(t, 1, diag.RowsIn)
	assert.Equal(t, 1, diag.RowsOut)

	e := rows[0]
	assert.Equal(t, int64(11), e.RowID)
	assert.Equal(t, "user-a", e.UserID)
	assert.Equal(t, int64(1740000000), e.SessionKey)
	assert.Equal(t, "t", e.CharacterName)
	require.NotNil(t, e.CurrentTier)
	assert.Equal(t, int64(1), *e.CurrentTier)
	require.NotNil(t, e.CurrentQI)
	assert.Equal(t, int64(5), *e.CurrentQI)
	assert.Equal(t, "ANDROID", e.OperatingSystem)
	assert.Equal(t, "Turkey", e.Country)
	require.NotNil(t, e.TimeZoneOffsetSeconds)
	assert.Equal(t, 10800.0, *e.TimeZoneOffsetSeconds)
	assert.True(t, math.IsNaN(e.SessionDurationSeconds), "duration starts as NaN")
}
