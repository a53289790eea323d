package entities

import (
	"encoding/json"
	"time"
)

// RawEvent is one row of the denormalized warehouse export. The nested
// payloads arrive as jsonb and are only decoded by the flatten stage.
type RawEvent struct {
	ID                         int64           `json:"id" gorm:"primaryKey;autoIncrement;column:id"`
	EventDate                  string          `json:"event_date" gorm:"column:event_date"`
	EventTimestamp             int64           `json:"event_timestamp" gorm:"column:event_timestamp"`
	EventPreviousTimestamp     *int64          `json:"event_previous_timestamp" gorm:"column:event_previous_timestamp"`
	EventName                  string          `json:"event_name" gorm:"column:event_name"`
	EventBundleSequenceID      int64           `json:"event_bundle_sequence_id" gorm:"column:event_bundle_sequence_id"`
	EventServerTimestampOffset *int64          `json:"event_server_timestamp_offset" gorm:"column:event_server_timestamp_offset"`
	UserID                     *string         `json:"user_id" gorm:"column:user_id"`
	UserPseudoID               string          `json:"user_pseudo_id" gorm:"column:user_pseudo_id"`
	UserFirstTouchTimestamp    *int64          `json:"user_first_touch_timestamp" gorm:"column:user_first_touch_timestamp"`
	StreamID                   string          `json:"stream_id" gorm:"column:stream_id"`
	Platform                   string          `json:"platform" gorm:"column:platform"`
	IsActiveUser               *bool           `json:"is_active_user" gorm:"column:is_active_user"`
	EventParams                json.RawMessage `json:"event_params" gorm:"column:event_params;type:jsonb"`
	UserProperties             json.RawMessage `json:"user_properties" gorm:"column:user_properties;type:jsonb"`
	Device                     json.RawMessage `json:"device" gorm:"column:device;type:jsonb"`
	Geo                        json.RawMessage `json:"geo" gorm:"column:geo;type:jsonb"`
	AppInfo                    json.RawMessage `json:"app_info" gorm:"column:app_info;type:jsonb"`
	PrivacyInfo                json.RawMessage `json:"privacy_info" gorm:"column:privacy_info;type:jsonb"`
	TrafficSource              json.RawMessage `json:"traffic_source" gorm:"column:traffic_source;type:jsonb"`
	SourceTable                string          `json:"source_table" gorm:"column:source_table"`
}

// TableName maps RawEvent onto the warehouse cache table.
func (RawEvent) TableName() string {
	return "events_raw"
}

// SessionID is the composite session identity. The SDK session key alone is
// not unique across users.
type SessionID struct {
	UserID     string `json:"user_pseudo_id"`
	SessionKey int64  `json:"session_key"`
}

// Event is one flattened, enriched telemetry row. It starts as the direct
// output of the flatten stage and is mutated in place by the later pipeline
// stages (datetime transforms, session durations, progress state, token
// decoding, value maps).
type Event struct {
	// RowID preserves warehouse arrival order and breaks ties between equal
	// timestamps so reruns sort identically.
	RowID        int64  `json:"row_id"`
	UserID       string `json:"user_pseudo_id"`
	EventName    string `json:"event_name"`
	Platform     string `json:"platform"`
	StreamID     string `json:"stream_id"`
	IsActiveUser bool   `json:"is_active_user"`

	// SessionKey is the client SDK session id (epoch seconds). Zero means the
	// event carried no session context.
	SessionKey int64 `json:"session_key"`

	// Raw epoch fields (microseconds unless noted).
	EventTimestamp        int64 `json:"event_timestamp"`
	PreviousTimestamp     int64 `json:"event_previous_timestamp"`
	FirstTouchTimestamp   int64 `json:"user_first_touch_timestamp"`
	ServerTimestampOffset int64 `json:"event_server_timestamp_offset"` // milliseconds

	// Derived wall-clock fields.
	EventDatetime      time.Time `json:"event_datetime"`
	EventDate          time.Time `json:"event_date"`
	ServerDelaySeconds float64   `json:"event_server_delay_seconds"`
	TimeDelta          float64   `json:"time_delta"`
	LocalTime          time.Time `json:"ts_local_time"`
	Hour               int       `json:"ts_hour"`
	Weekday            string    `json:"ts_weekday"`
	Daypart            string    `json:"ts_daytime_named"`
	WeekendFlag        string    `json:"ts_is_weekend"`

	// Device / geo / app metadata.
	DeviceCategory         string  `json:"device__category"`
	MobileBrandName        string  `json:"device__mobile_brand_name"`
	MobileModelName        string  `json:"device__mobile_model_name"`
	MobileMarketingName    string  `json:"device__mobile_marketing_name"`
	OperatingSystem        string  `json:"device__operating_system"`
	OperatingSystemVersion string  `json:"device__operating_system_version"`
	DeviceLanguage         string  `json:"device__language"`
	IsLimitedAdTracking    string  `json:"device__is_limited_ad_tracking"`
	TimeZoneOffsetSeconds  *float64 `json:"-"`
	TimeZoneOffsetHours    float64  `json:"device__time_zone_offset_hours"`
	Country                string  `json:"geo__country"`
	Region                 string  `json:"geo__region"`
	City                   string  `json:"geo__city"`
	AppVersion             string  `json:"app_info__version"`
	InstallSource          string  `json:"app_info__install_source"`
	InstallStore           string  `json:"app_info__install_store"`

	// Gameplay progress context. Pointers distinguish "not carried on this
	// event" from a real zero; the forward-fill stage populates them within
	// (user, session) groups.
	CharacterName           string `json:"event_params__character_name"`
	CurrentTier             *int64 `json:"event_params__current_tier"`
	CurrentQI               *int64 `json:"event_params__current_qi"`
	QuestionIndex           *int64 `json:"event_params__current_question_index"`
	CumulativeQuestionIndex *int64 `json:"cumulative_question_index"`
	QuestionAddress         string `json:"question_address"`

	// Frequently used event parameters, extracted from Params by the flatten
	// stage. Everything else stays reachable through Params.
	MiniGameRI            string   `json:"event_params__mini_game_ri"`
	MiniGameName          string   `json:"event_params__mini_game_name"`
	MenuName              string   `json:"event_params__menu_name"`
	AnsweredWrong         *float64 `json:"event_params__answered_wrong"`
	SpentTo               string   `json:"event_params__spent_to"`
	WhereItsSpent         string   `json:"event_params__where_its_spent"`
	WhereItsEarned        string   `json:"event_params__where_its_earned"`
	HowItsEarned          string   `json:"event_params__how_its_earned"`
	CurrencyName          string   `json:"event_params__currency_name"`
	EarnedAmount          float64  `json:"event_params__earned_amount"`
	SpentAmount           float64  `json:"event_params__spent_amount"`
	AdNetwork             string   `json:"event_params__ad_network"`
	AdUnitID              string   `json:"event_params__ad_unit_id"`
	AdInstance            string   `json:"event_params__ad_instance"`
	AdID                  string   `json:"event_params__ad_id"`
	AdPlacement           string   `json:"event_params__ad_placement"`
	AdRewardType          string   `json:"event_params__ad_reward_type"`
	AdErrorCode           *int64   `json:"event_params__ad_error_code"`
	EngagementTimeSeconds float64  `json:"event_params__engagement_time_seconds"`
	TimeSpentSeconds      *float64 `json:"event_params__time_spent_seconds"`

	// Session reconstruction results. SessionDurationSeconds is NaN for a
	// session with no start marker.
	SessionDurationSeconds float64   `json:"session_duration_seconds"`
	SessionStart           time.Time `json:"session_start_time"`
	SessionEnd             time.Time `json:"session_end_time"`
	EventDurationSeconds   float64   `json:"event_duration_seconds"`

	// Mini-game token decoding results.
	MazeGender     string `json:"maze_gender,omitempty"`
	MazeHand       string `json:"maze_hand,omitempty"`
	MazeLevel      string `json:"maze_level,omitempty"`
	BuffType       string `json:"buff_type,omitempty"`
	BuffGift       *bool  `json:"buff_gift,omitempty"`
	BuffGold       *bool  `json:"buff_gold,omitempty"`
	EarnedBuffType string `json:"earned_buff_type,omitempty"`
	DollName       string `json:"doll_name,omitempty"`

	// Shop categorization results.
	ShopPermanentItem  string `json:"shop_permanent_item,omitempty"`
	ShopConsumableItem string `json:"shop_consumable_item,omitempty"`
	BoardItem          string `json:"board_item,omitempty"`

	// Previous event within the same (user, session), for root-cause context.
	PrevEventName string `json:"prev_event_name,omitempty"`
	PrevEventMenu string `json:"prev_event_menu,omitempty"`

	// Full flattened parameter sets; superset of the extracted fields above.
	Params    map[string]any `json:"event_params_all,omitempty"`
	UserProps map[string]any `json:"user_properties_all,omitempty"`
}

// SessionID returns the composite (user, session key) identity.
func (e *Event) SessionID() SessionID {
	return SessionID{UserID: e.UserID, SessionKey: e.SessionKey}
}

// ParamString returns a string event parameter, or "" when absent.
func (e *Event) ParamString(key string) string {
	if v, ok := e.Params[key].(string); ok {
		return v
	}
	return ""
}

// ParamTruthy reports whether an event parameter holds a truthy marker.
// Conversion params arrive as strings from the SDK ("true", "1", "yes", "y")
// but booleans and numbers are accepted too.
func (e *Event) ParamTruthy(key string) bool {
	switch v := e.Params[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch v {
		case "true", "True", "TRUE", "1", "yes", "y", "Yes", "Y":
			return true
		}
	}
	return false
}
