package entities

import "time"

// UserProfile is one row of the by_users view: a per-installation lifecycle
// summary across every session of a user.
type UserProfile struct {
	UserID string `json:"user_pseudo_id"`

	FirstEventDate        time.Time `json:"first_event_date"`
	TotalSessions         int       `json:"total_sessions"`
	TotalCharactersOpened int       `json:"total_characters_opened"`
	TotalPlaytimeMinutes  float64   `json:"total_playtime_minutes"`

	// First-observed device and geo facts; Version is last-observed so an
	// upgrade mid-log shows the final version next to the starting one.
	Country                string `json:"country"`
	InstallSource          string `json:"install_source"`
	OperatingSystem        string `json:"operating_system"`
	OperatingSystemVersion string `json:"operating_system_version"`
	IsLimitedAdTracking    string `json:"is_limited_ad_tracking"`
	DeviceLanguage         string `json:"device_language"`
	StartVersion           string `json:"start_version"`
	Version                string `json:"version"`

	AdsWatched         int `json:"ads_watched"`
	QuestionsCompleted int `json:"questions_completed"`
	GamesEnded         int `json:"games_ended"`
	AppRemoved         int `json:"app_removed"`
	SessionsStarted    int `json:"sessions_started"`

	// Onboarding conversion flags, reduced per user from the raw params.
	PPAccepted         int `json:"pp_accepted"`
	VideoStart         int `json:"video_start"`
	VideoFinished      int `json:"video_finished"`
	Entered            int `json:"entered"`
	Shown              int `json:"shown"`
	Opened             int `json:"opened"`
	Returned           int `json:"returned"`
	Closed             int `json:"closed"`
	Dragged            int `json:"dragged"`
	WelcomeVideoPlayed int `json:"welcome_video_played"`
	TutorialCompleted  int `json:"tutorial_completed"`

	LastEventDate time.Time `json:"last_event_date"`
	LastEventName string    `json:"last_event_name"`

	// Derived funnel milestones.
	AnsweredFirstQuestion  int `json:"answered_first_question"`
	AnsweredSecondQuestion int `json:"answered_second_question"`
	AnsweredThirdQuestion  int `json:"answered_third_question"`
	SawMi                  int `json:"saw_mi"`
	AnsweredTenQuestions   int `json:"answered_ten_questions"`
	SecondSessionStarted   int `json:"second_session_started"`
	SecondDayActive        int `json:"second_day_active"`
	Passed10Min            int `json:"passed_10_min"`
}

// FunnelFlag reads a conversion flag off the profile by its stage key. Stage
// keys follow the raw parameter names so the funnel definition stays a pure
// data asset.
func (u *UserProfile) FunnelFlag(key string) int {
	switch key {
	case "pp_accepted":
		return u.PPAccepted
	case "video_start":
		return u.VideoStart
	case "video_finished":
		return u.VideoFinished
	case "entered":
		return u.Entered
	case "shown":
		return u.Shown
	case "opened":
		return u.Opened
	case "return":
		return u.Returned
	case "closed":
		return u.Closed
	case "drag":
		return u.Dragged
	case "answered_first_question":
		return u.AnsweredFirstQuestion
	case "answered_second_question":
		return u.AnsweredSecondQuestion
	case "answered_third_question":
		return u.AnsweredThirdQuestion
	case "saw_mi":
		return u.SawMi
	case "passed_10_min":
		return u.Passed10Min
	case "answered_ten_questions":
		return u.AnsweredTenQuestions
	case "second_session_started":
		return u.SecondSessionStarted
	case "second_day_active":
		return u.SecondDayActive
	case "tutorial_completed":
		if u.TutorialCompleted > 0 {
			return 1
		}
		return 0
	}
	return 0
}
