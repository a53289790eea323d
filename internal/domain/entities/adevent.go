package entities

import "time"

// AdEvent is one row of the by_ads view: a denormalized ad lifecycle event
// (loaded/displayed/rewarded/clicked/closed/load-failed) with the gameplay
// and device context needed to slice ad performance, plus the immediately
// preceding event in the same session.
type AdEvent struct {
	EventDatetime time.Time `json:"event_datetime"`
	SessionKey    int64     `json:"session_key"`
	UserID        string    `json:"user_pseudo_id"`
	EventName     string    `json:"event_name"`

	AdID         string `json:"ad_id"`
	AdUnitID     string `json:"ad_unit_id"`
	AdNetwork    string `json:"ad_network"`
	AdPlacement  string `json:"ad_placement"`
	AdRewardType string `json:"ad_reward_type"`
	AdInstance   string `json:"ad_instance"`
	AdErrorCode  *int64 `json:"ad_error_code"`

	CharacterName   string `json:"character_name"`
	CurrentTier     *int64 `json:"current_tier"`
	QuestionIndex   *int64 `json:"current_question_index"`
	QuestionAddress string `json:"question_address"`

	Weekday            string  `json:"weekday"`
	Daypart            string  `json:"daypart"`
	AppVersion         string  `json:"app_version"`
	Country            string  `json:"country"`
	OperatingSystem    string  `json:"operating_system"`
	ServerDelaySeconds float64 `json:"server_delay_seconds"`

	PrevEventName string `json:"prev_event_name"`
	PrevEventMenu string `json:"prev_event_menu"`
}

// TechnicalEvent is one row of the technical_events view: an exception or
// ad-load failure with the previous event in the same session for
// root-cause context.
type TechnicalEvent struct {
	EventDatetime time.Time `json:"event_datetime"`
	EventName     string    `json:"event_name"`
	UserID        string    `json:"user_pseudo_id"`
	SessionKey    int64     `json:"session_key"`

	AppVersion             string `json:"app_version"`
	MobileMarketingName    string `json:"mobile_marketing_name"`
	OperatingSystemVersion string `json:"operating_system_version"`

	PrevEventName string `json:"prev_event_name"`
	PrevEventMenu string `json:"prev_event_menu"`

	AdNetwork   string `json:"ad_network"`
	AdInstance  string `json:"ad_instance"`
	AdID        string `json:"ad_id"`
	AdErrorCode *int64 `json:"ad_error_code"`

	ServerDelaySeconds float64 `json:"server_delay_seconds"`
}
