package views

import (
	"math"
	"testing"
	"time"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewEvent(rowID int64, user string, key int64, name string, at time.Time) *entities.Event {
	return &entities.Event{
		RowID:                  rowID,
		UserID:                 user,
		SessionKey:             key,
		EventName:              name,
		EventTimestamp:         at.UnixMicro(),
		EventDatetime:          at,
		EventDate:              time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC),
		SessionDurationSeconds: math.NaN(),
	}
}

func withDuration(e *entities.Event, seconds float64) *entities.Event {
	e.SessionDurationSeconds = seconds
	return e
}

func TestCreateBySessions(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tier := int64(2)
	wrong := 1.0

	start := withDuration(viewEvent(1, "u1", 100, "Session Started", base), 120)
	gold := withDuration(viewEvent(2, "u1", 100, "Starting Currencies", base.Add(time.Second)), 120)
	gold.Params = map[string]any{"gold": float64(500)}
	question := withDuration(viewEvent(3, "u1", 100, "Question Started", base.Add(2*time.Second)), 120)
	question.CharacterName = "Billy"
	question.CurrentTier = &tier
	completed := withDuration(viewEvent(4, "u1", 100, "Question Completed", base.Add(3*time.Second)), 120)
	completed.AnsweredWrong = &wrong
	ad := withDuration(viewEvent(5, "u1", 100, "Ad Rewarded", base.Add(4*time.Second)), 120)
	earned := withDuration(viewEvent(6, "u1", 100, "Earned Virtual Currency", base.Add(5*time.Second)), 120)
	earned.CurrencyName = "Gold"
	earned.EarnedAmount = 300
	spent := withDuration(viewEvent(7, "u1", 100, "Spent Virtual Currency", base.Add(6*time.Second)), 120)
	spent.CurrencyName = "Gold"
	spent.SpentAmount = 200
	spent.SpentTo = "Consumable Item"
	spent.ShopConsumableItem = "Potion"

	// bounce session: filtered out entirely
	bounce := withDuration(viewEvent(8, "u2", 300, "Session Started", base), 10)

	rows := []*entities.Event{start, gold, question, completed, ad, earned, spent, bounce}
	result := CreateBySessions(rows)
	require.Len(t, result, 1)

	s := result[0]
	assert.Equal(t, int64(100), s.SessionKey)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, 120.0, s.SessionDurationSeconds)
	assert.False(t, s.Passed10Min)
	assert.Equal(t, base, s.SessionStartTime)
	assert.Equal(t, 1, s.CustomerCharacterCount)
	assert.Equal(t, []string{"Billy"}, s.CharacterList)
	assert.Equal(t, 2.0, s.AverageTier)
	assert.Equal(t, 1.0, s.AverageWrongAnswers)
	assert.Equal(t, 1, s.AdsWatchedCount)
	assert.Equal(t, 500.0, s.GoldStarting)
	assert.Equal(t, 300.0, s.GoldGained)
	assert.Equal(t, 200.0, s.GoldSpent)
	assert.Equal(t, 100.0, s.GoldDelta)
	assert.False(t, s.IsDebtedForDoll)
	assert.Equal(t, 1, s.PotionsBought)
	// currency snapshot is skipped when picking the last event
	assert.Equal(t, "Spent Virtual Currency", s.LastEventName)
}

func TestCreateBySessionsAllNoiseFallsBack(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	first := withDuration(viewEvent(1, "u1", 100, "User Engagement", base), 60)
	second := withDuration(viewEvent(2, "u1", 100, "Screen Viewed", base.Add(time.Second)), 60)

	result := CreateBySessions([]*entities.Event{first, second})
	require.Len(t, result, 1)
	// every event is in the skip set, so the literal latest wins
	assert.Equal(t, "Screen Viewed", result[0].LastEventName)
}

func TestCreateBySessionsEmpty(t *testing.T) {
	assert.Empty(t, CreateBySessions(nil))
}
