package views

import (
	"log"
	"math"
	"sort"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

// CreateByUsers builds the per-user lifecycle view. Playtime sums one
// duration per distinct (user, session key), never per event, so duplicate
// event deliveries cannot double-count.
func CreateByUsers(rows []*entities.Event) []entities.UserProfile {
	byUser := map[string][]*entities.Event{}
	for _, e := range rows {
		if e.UserID == "" {
			continue
		}
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}
	if len(byUser) == 0 {
		log.Printf("⚠️ by_users: no rows with a user id")
		return []entities.UserProfile{}
	}

	userIDs := make([]string, 0, len(byUser))
	for id := range byUser {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	result := make([]entities.UserProfile, 0, len(userIDs))
	for _, userID := range userIDs {
		group := byUser[userID]

		u := entities.UserProfile{UserID: userID}

		sessions := map[int64]bool{}
		characters := map[string]bool{}
		playtimeSeconds := 0.0

		for _, e := range group {
			if u.FirstEventDate.IsZero() || e.EventDate.Before(u.FirstEventDate) {
				u.FirstEventDate = e.EventDate
			}
			if e.SessionKey != 0 && !sessions[e.SessionKey] {
				sessions[e.SessionKey] = true
				if !math.IsNaN(e.SessionDurationSeconds) {
					playtimeSeconds += e.SessionDurationSeconds
				}
			}
			if e.CharacterName != "" {
				characters[e.CharacterName] = true
			}

			// First-observed static facts; Version tracks the last one seen.
			if u.Country == "" {
				u.Country = e.Country
			}
			if u.InstallSource == "" {
				u.InstallSource = e.InstallSource
			}
			if u.OperatingSystem == "" {
				u.OperatingSystem = e.OperatingSystem
			}
			if u.OperatingSystemVersion == "" {
				u.OperatingSystemVersion = e.OperatingSystemVersion
			}
			if u.IsLimitedAdTracking == "" {
				u.IsLimitedAdTracking = e.IsLimitedAdTracking
			}
			if u.DeviceLanguage == "" {
				u.DeviceLanguage = e.DeviceLanguage
			}
			if u.StartVersion == "" {
				u.StartVersion = e.AppVersion
			}
			if e.AppVersion != "" {
				u.Version = e.AppVersion
			}

			switch e.EventName {
			case "Ad Rewarded":
				u.AdsWatched++
			case "Question Completed":
				u.QuestionsCompleted++
			case "Game Ended":
				u.GamesEnded++
			case "App Removed":
				u.AppRemoved++
			case "Session Started":
				u.SessionsStarted++
			}

			u.PPAccepted = orFlag(u.PPAccepted, e.ParamTruthy("pp_accepted"))
			u.VideoStart = orFlag(u.VideoStart, e.ParamTruthy("video_start"))
			u.VideoFinished = orFlag(u.VideoFinished, e.ParamTruthy("video_finished"))
			u.Entered = orFlag(u.Entered, e.ParamTruthy("entered"))
			u.Shown = orFlag(u.Shown, e.ParamTruthy("shown"))
			u.Opened = orFlag(u.Opened, e.ParamTruthy("opened"))
			u.Returned = orFlag(u.Returned, e.ParamTruthy("return"))
			u.Closed = orFlag(u.Closed, e.ParamTruthy("closed"))
			u.Dragged = orFlag(u.Dragged, e.ParamTruthy("drag"))

			// The raw parameter key really is "wecolme_video"; the client
			// shipped with the typo and the log keeps it.
			u.WelcomeVideoPlayed = orFlag(u.WelcomeVideoPlayed, e.ParamString("wecolme_video") == "wecolme_video")
			if e.EventName == "Video Watched" && e.ParamString("tutorial_video") == "tutorial_video" {
				u.TutorialCompleted++
			}
		}

		u.TotalSessions = len(sessions)
		u.TotalCharactersOpened = len(characters)
		u.TotalPlaytimeMinutes = utils.Round(playtimeSeconds/60, 2)

		last := lastMeaningfulEvent(group, userSkipEvents)
		u.LastEventName = last.EventName
		u.LastEventDate = last.EventDate

		u.AnsweredFirstQuestion = boolFlag(u.QuestionsCompleted > 0)
		u.AnsweredSecondQuestion = boolFlag(u.QuestionsCompleted > 1)
		u.AnsweredThirdQuestion = boolFlag(u.QuestionsCompleted > 2)
		u.SawMi = boolFlag(u.TotalCharactersOpened >= 2)
		u.AnsweredTenQuestions = boolFlag(u.QuestionsCompleted >= 10)
		u.SecondSessionStarted = boolFlag(u.TotalSessions >= 2)
		u.SecondDayActive = boolFlag(u.LastEventDate.After(u.FirstEventDate))
		u.Passed10Min = boolFlag(u.TotalPlaytimeMinutes >= 10)

		result = append(result, u)
	}

	log.Printf("✅ by_users created with %d records", len(result))
	return result
}

func orFlag(current int, hit bool) int {
	if hit {
		return 1
	}
	return current
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
