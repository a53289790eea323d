package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), NormalizeDate(ts))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 3, 8, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestGenerateDateRange(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, GenerateDateRange(from, to))
	assert.Empty(t, GenerateDateRange(to, from))
}
