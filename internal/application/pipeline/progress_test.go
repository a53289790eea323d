package pipeline

import (
	"testing"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func progressEvent(rowID int64, user string, key int64, char string, tier, qi *int64) *entities.Event {
	return &entities.Event{
		RowID:          rowID,
		UserID:         user,
		SessionKey:     key,
		EventTimestamp: rowID * 1000,
		CharacterName:  char,
		CurrentTier:    tier,
		CurrentQI:      qi,
	}
}

func TestForwardFillProgress(t *testing.T) {
	rows := []*entities.Event{
		progressEvent(1, "u1", 100, "t", i64(1), i64(5)),
		progressEvent(2, "u1", 100, "", nil, nil),
		progressEvent(3, "u1", 100, "", nil, i64(4)),
		// new session: state must start blank
		progressEvent(4, "u1", 200, "", nil, nil),
	}

	_, _, err := ForwardFillProgress(NewRunContext(), rows)
	require.NoError(t, err)

	assert.Equal(t, "t", rows[1].CharacterName)
	require.NotNil(t, rows[1].CurrentTier)
	assert.Equal(t, int64(1), *rows[1].CurrentTier)
	require.NotNil(t, rows[1].CurrentQI)
	assert.Equal(t, int64(5), *rows[1].CurrentQI)

	// explicit new value replaces the carried one
	assert.Equal(t, int64(4), *rows[2].CurrentQI)

	// nothing leaks into the next session
	assert.Equal(t, "", rows[3].CharacterName)
	assert.Nil(t, rows[3].CurrentTier)
	assert.Nil(t, rows[3].CurrentQI)
}

func TestQuestionIndexCleanup(t *testing.T) {
	tutorialTier1 := progressEvent(1, "u1", 100, "t", i64(1), i64(5))
	regularTier1 := progressEvent(2, "u1", 100, "billy", i64(1), i64(5))
	regularTier4 := progressEvent(3, "u1", 100, "billy", i64(4), i64(3))
	incomplete := progressEvent(4, "u1", 100, "billy", nil, i64(3))
	badTier := progressEvent(5, "u1", 100, "billy", i64(9), i64(3))

	rows := []*entities.Event{tutorialTier1, regularTier1, regularTier4, incomplete, badTier}
	_, problems, err := QuestionIndexCleanup(NewRunContext(), rows)
	require.NoError(t, err)

	require.NotNil(t, tutorialTier1.QuestionIndex)
	assert.Equal(t, int64(8), *tutorialTier1.QuestionIndex)
	require.NotNil(t, regularTier1.QuestionIndex)
	assert.Equal(t, int64(12), *regularTier1.QuestionIndex)
	require.NotNil(t, regularTier4.QuestionIndex)
	assert.Equal(t, int64(8), *regularTier4.QuestionIndex)

	assert.Nil(t, incomplete.QuestionIndex)
	assert.Nil(t, badTier.QuestionIndex)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "tier 9")
}

func TestCumulativeQuestionIndex(t *testing.T) {
	tier4 := progressEvent(1, "u1", 100, "billy", i64(4), i64(3))
	tutorialTier2 := progressEvent(2, "u1", 100, "t", i64(2), i64(5))
	missingTier := progressEvent(3, "u1", 100, "billy", nil, i64(3))

	rows := []*entities.Event{tier4, tutorialTier2, missingTier}
	_, _, err := QuestionIndexCleanup(NewRunContext(), rows)
	require.NoError(t, err)
	_, _, err = CumulativeQuestionIndex(NewRunContext(), rows)
	require.NoError(t, err)

	// tier 4 index 8 on top of the 40 earlier questions
	require.NotNil(t, tier4.CumulativeQuestionIndex)
	assert.Equal(t, int64(48), *tier4.CumulativeQuestionIndex)

	// tutorial deck stacks 12 under tier 2; 13-5=8, 8+12=20
	require.NotNil(t, tutorialTier2.CumulativeQuestionIndex)
	assert.Equal(t, int64(20), *tutorialTier2.CumulativeQuestionIndex)

	assert.Nil(t, missingTier.CumulativeQuestionIndex)
}
