package analytics

import (
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// MaxWindowDays is the longest window whose trend labels stay unique; a
// longer one would merge buckets that share a "Jan 02" label.
const MaxWindowDays = 365

// Window returns the events at or after now minus days days, in input order
func Window(events []models.BehaviorEvent, days int, now time.Time) []models.BehaviorEvent {
	cutoff := since(now.AddDate(0, 0, -days))
	out := make([]models.BehaviorEvent, 0, len(events))
	for _, e := range events {
		if cutoff(e) {
			out = append(out, e)
		}
	}
	return out
}

// Analyze builds the insights report for a days-long window ending at now
func Analyze(events []models.BehaviorEvent, days int, now time.Time) models.InsightsReport {
	windowed := Window(events, days, now)
	triggers := TopTriggers(windowed, TopTriggerLimit)
	intensity := Intensity(windowed)

	topTrigger := ""
	if len(triggers) > 0 {
		topTrigger = triggers[0].Label
	}

	dailyAverage := 0.0
	if days > 0 {
		dailyAverage = roundTenth(float64(len(windowed)) / float64(days))
	}

	return models.InsightsReport{
		WindowDays:       days,
		TotalEvents:      len(windowed),
		AverageIntensity: intensity.Average,
		DailyAverage:     dailyAverage,
		Trend:            Trend(events, days, now),
		TypeDistribution: TypeDistribution(windowed),
		TopTriggers:      triggers,
		Intensity:        intensity,
		Recommendations: Recommend(RecommendationInput{
			TotalCount:       len(windowed),
			TopTrigger:       topTrigger,
			AverageIntensity: intensity.Average,
			WindowDays:       days,
		}),
		ComputedAt:     now,
		DataSufficient: len(windowed) > 0,
	}
}
