package entities

import "time"

// SessionSummary is one row of the by_sessions view: the aggregate of a
// single (user, session key) group after enrichment. Sessions shorter than
// 15 seconds are not summarized.
type SessionSummary struct {
	SessionKey             int64     `json:"session_key"`
	UserID                 string    `json:"user_pseudo_id"`
	SessionDurationSeconds float64   `json:"session_duration_seconds"`
	Passed10Min            bool      `json:"passed_10_min"`
	SessionStartTime       time.Time `json:"session_start_time"`

	CustomerCharacterCount int      `json:"customer_character_count"`
	CharacterList          []string `json:"character_list"`
	AverageTier            float64  `json:"average_tier"`
	AverageWrongAnswers    float64  `json:"average_wrong_answers"`

	WheelImpressions int `json:"wheel_impressions"`
	WheelSkips       int `json:"wheel_skips"`
	WheelSpins       int `json:"wheel_spins"`

	AdsWatchedCount int `json:"ads_watched_count"`

	GoldStarting    float64 `json:"gold_starting"`
	GoldGained      float64 `json:"gold_gained"`
	GoldSpent       float64 `json:"gold_spent"`
	GoldDelta       float64 `json:"gold_delta"`
	IsDebtedForDoll bool    `json:"is_debted_for_doll"`

	PotionsBought  int `json:"potions_bought"`
	IncensesBought int `json:"incenses_bought"`
	AmuletsBought  int `json:"amulets_bought"`

	AliCinUsed   int `json:"alicin_used"`
	CauldronUsed int `json:"cauldron_used"`
	CoffeeUsed   int `json:"coffee_used"`

	LastEventName string    `json:"last_event_name"`
	LastEventTime time.Time `json:"last_event_time"`

	BoughtNewCustomer int `json:"bought_new_customer"`
}
