package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewRowsDeterministicOrder(t *testing.T) {
	runID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	views := &entities.Views{
		BySessions: []entities.SessionSummary{{SessionKey: 100, UserID: "u1"}},
		ByUsers:    []entities.UserProfile{{UserID: "u1"}},
	}

	first, err := buildViewRows(runID, views, now)
	require.NoError(t, err)
	require.Len(t, first, 6)

	names := make([]string, 0, len(first))
	for _, row := range first {
		names = append(names, row.ViewName)
		assert.Equal(t, runID, row.RunID)
		assert.Equal(t, now, row.CreatedAt)
		assert.NotEmpty(t, row.Payload)
	}
	assert.Equal(t, []string{
		"by_ads", "by_date", "by_questions", "by_sessions", "by_users", "technical_events",
	}, names)
	assert.Equal(t, 1, first[3].RowCount)

	// identical input builds the identical row sequence
	second, err := buildViewRows(runID, views, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
