package analytics

import "github.com/JonnyWalker81/pawlog/backend/internal/models"

var intensityLabels = [...]string{"Very Low", "Low", "Medium", "High", "Very High"}

// IntensityLabel returns the human-readable name of an intensity level
func IntensityLabel(level int) string {
	return intensityLabels[clampIntensity(level)-models.MinIntensity]
}

// Intensity counts events per intensity level and computes the mean. Every
// level from 1 to 5 is present, so the counts always sum to len(events);
// out-of-range values are clamped to the nearest level.
func Intensity(events []models.BehaviorEvent) models.IntensityStats {
	levels := make([]models.IntensityLevel, 0, models.MaxIntensity)
	for level := models.MinIntensity; level <= models.MaxIntensity; level++ {
		levels = append(levels, models.IntensityLevel{Level: level, Label: IntensityLabel(level)})
	}

	for _, e := range events {
		levels[clampIntensity(e.Intensity)-models.MinIntensity].Count++
	}

	return models.IntensityStats{
		Levels:  levels,
		Average: meanIntensity(events),
	}
}
