package entities

// QuestionAttempt is one row of the by_questions view: counts and safe
// ratios for one question inside one session.
type QuestionAttempt struct {
	QuestionAddress string `json:"question_address"`
	CharacterName   string `json:"character_name"`
	CurrentTier     int64  `json:"current_tier"`
	QuestionIndex   int64  `json:"current_question_index"`
	SessionKey      int64  `json:"session_key"`

	QuestionStarted int     `json:"question_started"`
	AnsweredCorrect int     `json:"answered_correct"`
	AnsweredWrong   float64 `json:"answered_wrong"`
	AdsWatched      int     `json:"ads_watched"`
	PotionsBought   int     `json:"potions_bought"`
	IncenseBought   int     `json:"incense_bought"`
	AmuletBought    int     `json:"amulet_bought"`
	AliCinUsed      int     `json:"alicin_used"`
	CoffeeUsed      int     `json:"coffee_used"`
	CauldronUsed    int     `json:"cauldron_used"`
	ScrollOpened    int     `json:"scroll_opened"`

	// Ratios are numerator / question_started with zero denominators mapped
	// to 0, rounded to 3 decimals.
	WrongAnswerRatio float64 `json:"wrong_answer_ratio"`
	AdsWatchRatio    float64 `json:"ads_watch_ratio"`
	AliCinUseRatio   float64 `json:"alicin_use_ratio"`
	CoffeeUseRatio   float64 `json:"coffee_use_ratio"`
	CauldronUseRatio float64 `json:"cauldron_use_ratio"`
	ScrollUseRatio   float64 `json:"scroll_use_ratio"`
}
