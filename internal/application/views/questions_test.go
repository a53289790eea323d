package views

import (
	"testing"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionEvent(rowID int64, name string, tier, index int64) *entities.Event {
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC).Add(time.Duration(rowID) * time.Second)
	e := viewEvent(rowID, "u1", 100, name, at)
	e.CharacterName = "Billy"
	e.CurrentTier = &tier
	e.QuestionIndex = &index
	e.QuestionAddress = "Billy - T: 2 - Q: 7"
	return e
}

func TestCreateByQuestions(t *testing.T) {
	wrong := 2.0

	started1 := questionEvent(1, "Question Started", 2, 7)
	started2 := questionEvent(2, "Question Started", 2, 7)
	completed := questionEvent(3, "Question Completed", 2, 7)
	completed.AnsweredWrong = &wrong
	ad := questionEvent(4, "Ad Rewarded", 2, 7)
	scroll := questionEvent(5, "Menu Opened", 2, 7)
	scroll.MenuName = "Scroll Menu"
	potion := questionEvent(6, "Spent Virtual Currency", 2, 7)
	potion.ShopConsumableItem = "Potion"
	alicin := questionEvent(7, "Spent Virtual Currency", 2, 7)
	alicin.SpentTo = "AliCin"

	// missing question context: excluded
	incomplete := viewEvent(8, "u1", 100, "Question Started", time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC))

	rows := []*entities.Event{started1, started2, completed, ad, scroll, potion, alicin, incomplete}
	result := CreateByQuestions(rows)
	require.Len(t, result, 1)

	q := result[0]
	assert.Equal(t, "Billy - T: 2 - Q: 7", q.QuestionAddress)
	assert.Equal(t, int64(100), q.SessionKey)
	assert.Equal(t, 2, q.QuestionStarted)
	assert.Equal(t, 1, q.AnsweredCorrect)
	assert.Equal(t, 2.0, q.AnsweredWrong)
	assert.Equal(t, 1, q.AdsWatched)
	assert.Equal(t, 1, q.ScrollOpened)
	assert.Equal(t, 1, q.PotionsBought)
	assert.Equal(t, 1, q.AliCinUsed)

	assert.Equal(t, 1.0, q.WrongAnswerRatio)
	assert.Equal(t, 0.5, q.AdsWatchRatio)
	assert.Equal(t, 0.5, q.AliCinUseRatio)
	assert.Equal(t, 0.0, q.CoffeeUseRatio)
}

func TestCreateByQuestionsZeroStarts(t *testing.T) {
	// a question seen only through an ad view: ratios must stay 0, not blow up
	ad := questionEvent(1, "Ad Rewarded", 2, 7)
	result := CreateByQuestions([]*entities.Event{ad})
	require.Len(t, result, 1)
	assert.Equal(t, 0, result[0].QuestionStarted)
	assert.Equal(t, 0.0, result[0].AdsWatchRatio)
}
