package views

import (
	"testing"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateByUsers(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	first := withDuration(viewEvent(1, "u1", 100, "Session Started", day1), 600)
	first.Country = "Turkey"
	first.OperatingSystem = "ANDROID"
	first.AppVersion = "1.2.0"
	first.Params = map[string]any{"pp_accepted": "true"}

	// same session: its duration must not be summed twice
	dup := withDuration(viewEvent(2, "u1", 100, "Question Completed", day1.Add(time.Minute)), 600)
	dup.CharacterName = "T"

	second := withDuration(viewEvent(3, "u1", 200, "Session Started", day2), 300)
	second.AppVersion = "1.3.0"
	second.CharacterName = "Billy"

	tutorial := withDuration(viewEvent(4, "u1", 200, "Video Watched", day2.Add(time.Minute)), 300)
	tutorial.Params = map[string]any{"tutorial_video": "tutorial_video"}

	result := CreateByUsers([]*entities.Event{first, dup, second, tutorial})
	require.Len(t, result, 1)

	u := result[0]
	assert.Equal(t, "u1", u.UserID)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), u.FirstEventDate)
	assert.Equal(t, 2, u.TotalSessions)
	assert.Equal(t, 2, u.TotalCharactersOpened)
	// 600 + 300 seconds, deduped by session, in minutes
	assert.Equal(t, 15.0, u.TotalPlaytimeMinutes)
	assert.Equal(t, "Turkey", u.Country)
	assert.Equal(t, "ANDROID", u.OperatingSystem)
	assert.Equal(t, "1.2.0", u.StartVersion)
	assert.Equal(t, "1.3.0", u.Version)
	assert.Equal(t, 2, u.SessionsStarted)
	assert.Equal(t, 1, u.QuestionsCompleted)
	assert.Equal(t, 1, u.PPAccepted)
	assert.Equal(t, 0, u.VideoStart)
	assert.Equal(t, 1, u.TutorialCompleted)

	assert.Equal(t, 1, u.AnsweredFirstQuestion)
	assert.Equal(t, 0, u.AnsweredSecondQuestion)
	assert.Equal(t, 1, u.SawMi)
	assert.Equal(t, 1, u.SecondSessionStarted)
	assert.Equal(t, 1, u.SecondDayActive)
	assert.Equal(t, 1, u.Passed10Min)
	assert.Equal(t, "Video Watched", u.LastEventName)
}

func TestCreateByUsersAllNoiseFallsBack(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	removed := viewEvent(1, "u1", 100, "App Removed", day)

	result := CreateByUsers([]*entities.Event{removed})
	require.Len(t, result, 1)
	assert.Equal(t, "App Removed", result[0].LastEventName)
}

func TestCreateByUsersSortedByID(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := []*entities.Event{
		viewEvent(1, "zeta", 100, "Session Started", day),
		viewEvent(2, "alpha", 200, "Session Started", day),
	}
	result := CreateByUsers(rows)
	require.Len(t, result, 2)
	assert.Equal(t, "alpha", result[0].UserID)
	assert.Equal(t, "zeta", result[1].UserID)
}
