package analytics

import (
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// DayLabelLayout formats trend bucket labels ("Jan 02"). Labels repeat after
// a year, so windows longer than twelve months can merge buckets.
const DayLabelLayout = "Jan 02"

// Trend buckets events per calendar day for the days-long window ending on
// now's day. The series always has exactly days points in chronological
// order; days with no events count zero and events outside the window are
// ignored. A non-positive window yields an empty series.
func Trend(events []models.BehaviorEvent, days int, now time.Time) []models.TrendPoint {
	if days <= 0 {
		return []models.TrendPoint{}
	}

	todayStart, windowEnd := DayBounds(now)
	windowStart := todayStart.AddDate(0, 0, -(days - 1))
	loc := now.Location()

	points := make([]models.TrendPoint, 0, days)
	bucketByLabel := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := windowStart.AddDate(0, 0, i)
		label := day.Format(DayLabelLayout)
		if _, seen := bucketByLabel[label]; !seen {
			bucketByLabel[label] = len(points)
		}
		points = append(points, models.TrendPoint{Date: day, Label: label})
	}

	for _, e := range events {
		if e.Timestamp.Before(windowStart) || !e.Timestamp.Before(windowEnd) {
			continue
		}
		label := e.Timestamp.In(loc).Format(DayLabelLayout)
		if i, ok := bucketByLabel[label]; ok {
			points[i].Count++
		}
	}

	return points
}
