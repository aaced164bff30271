package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

func TestTrend_BucketCountAndOrder(t *testing.T) {
	for _, days := range []int{1, 7, 30, 90, 45} {
		points := Trend(nil, days, fixedNow)
		require.Len(t, points, days)

		for i := 1; i < len(points); i++ {
			assert.True(t, points[i-1].Date.Before(points[i].Date), "bucket %d out of order", i)
		}
		for _, p := range points {
			assert.Zero(t, p.Count)
		}
		assert.Equal(t, "Mar 15", points[len(points)-1].Label)
	}
}

func TestTrend_Labels(t *testing.T) {
	points := Trend(nil, 7, fixedNow)

	labels := make([]string, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"Mar 09", "Mar 10", "Mar 11", "Mar 12", "Mar 13", "Mar 14", "Mar 15"}, labels)
}

func TestTrend_CountsOnlyInWindow(t *testing.T) {
	start, end := DayBounds(fixedNow)
	events := []models.BehaviorEvent{
		event(1, "Barking", "Doorbell", 3, fixedNow),
		event(2, "Barking", "Doorbell", 3, start),
		event(3, "Barking", "Doorbell", 3, daysAgo(6)),
		event(4, "Barking", "Doorbell", 3, start.AddDate(0, 0, -6)),
		event(5, "Barking", "Doorbell", 3, start.AddDate(0, 0, -6).Add(-time.Minute)), // day before window
		event(6, "Barking", "Doorbell", 3, end),                                       // tomorrow
		event(7, "Barking", "Doorbell", 3, daysAgo(365)),                              // same label, a year earlier
	}

	points := Trend(events, 7, fixedNow)
	require.Len(t, points, 7)

	assert.Equal(t, 2, points[0].Count)
	assert.Equal(t, 2, points[6].Count)

	total := 0
	for _, p := range points {
		total += p.Count
	}
	assert.Equal(t, 4, total)
}

func TestTrend_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, loc)
	// 03:00 UTC on Mar 15 is 19:00 on Mar 14 in UTC-8
	events := []models.BehaviorEvent{
		event(1, "Barking", "Doorbell", 3, time.Date(2024, time.March, 15, 3, 0, 0, 0, time.UTC)),
	}

	points := Trend(events, 2, now)
	require.Len(t, points, 2)
	assert.Equal(t, "Mar 14", points[0].Label)
	assert.Equal(t, 1, points[0].Count)
	assert.Equal(t, 0, points[1].Count)
}

func TestTrend_NonPositiveWindow(t *testing.T) {
	assert.Empty(t, Trend(historyFixture(), 0, fixedNow))
	assert.Empty(t, Trend(historyFixture(), -3, fixedNow))
}
