package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThreshold(t *testing.T) {
	now := time.Date(2026, 1, 20, 15, 30, 0, 0, time.UTC)
	require.Equal(t, "2026-01-13", Threshold(now, 7))

	// Non-positive windows fall back to the default.
	require.Equal(t, "2026-01-13", Threshold(now, 0))

	// Month boundary.
	require.Equal(t, "2026-01-29", Threshold(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), 5))
}

func TestIsHotBoundary(t *testing.T) {
	threshold := "2026-01-13"

	// A day exactly at the threshold is hot; one day older is cold.
	require.True(t, IsHot("2026-01-13", threshold))
	require.False(t, IsHot("2026-01-12", threshold))

	require.True(t, IsHot("2026-01-20", threshold))
	require.False(t, IsHot("2025-12-31", threshold))
}
