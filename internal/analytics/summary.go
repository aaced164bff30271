package analytics

import "github.com/JonnyWalker81/pawlog/backend/internal/models"

// Summarize computes the dashboard summary over events already restricted to
// the current day (see Today). An empty set yields a zero summary.
func Summarize(events []models.BehaviorEvent) models.DailySummary {
	behaviors := newTally()
	triggers := newTally()
	for _, e := range events {
		behaviors.add(EffectiveType(e).Display())
		triggers.add(EffectiveTrigger(e).Display())
	}

	return models.DailySummary{
		TotalToday:         len(events),
		AverageIntensity:   meanIntensity(events),
		MostCommonBehavior: behaviors.top(),
		MostCommonTrigger:  triggers.top(),
	}
}
