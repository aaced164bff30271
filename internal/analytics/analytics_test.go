package analytics

import (
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// fixedNow anchors every time-dependent test
var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func event(id int64, typ, trigger string, intensity int, ts time.Time) models.BehaviorEvent {
	return models.BehaviorEvent{
		ID:        id,
		Type:      typ,
		Trigger:   trigger,
		Intensity: intensity,
		Timestamp: ts,
	}
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}
