package analytics

import "fmt"

// Recommendation messages
const (
	MsgStartLogging    = "Start logging behaviors to receive personalized insights and training recommendations."
	MsgConsultTrainer  = "Consider consulting a professional dog trainer - your dog is showing high-intensity behaviors consistently."
	MsgMoreStimulation = "Consider increasing mental stimulation and physical exercise to reduce excessive behaviors."
	MsgGreatProgress   = "Great job! Your consistent training seems to be paying off. Keep up the good work!"
	MsgKeepMonitoring  = "Continue monitoring your dog's behavior patterns to identify areas for improvement."

	desensitizeFormat = "Focus on desensitization training for \"%s\" - it's your dog's most common trigger."
)

// Recommendation thresholds
const (
	HighIntensityThreshold = 4.0
	HighDailyAverage       = 5.0
	LowDailyAverage        = 1.0
)

// RecommendationInput carries the window aggregates the rules look at
type RecommendationInput struct {
	TotalCount       int
	TopTrigger       string // empty when no trigger was recorded
	AverageIntensity float64
	WindowDays       int
}

// DesensitizationMessage names the trigger to train against
func DesensitizationMessage(trigger string) string {
	return fmt.Sprintf(desensitizeFormat, trigger)
}

// Recommend applies the training rules in priority order. An empty window
// yields only the start-logging message. A daily average of exactly 1 or
// exactly 5 fires neither frequency rule.
func Recommend(in RecommendationInput) []string {
	if in.TotalCount == 0 {
		return []string{MsgStartLogging}
	}

	var out []string

	if in.AverageIntensity >= HighIntensityThreshold {
		out = append(out, MsgConsultTrainer)
	}

	if in.TopTrigger != "" {
		out = append(out, DesensitizationMessage(in.TopTrigger))
	}

	days := in.WindowDays
	if days <= 0 {
		days = 1
	}
	dailyAverage := float64(in.TotalCount) / float64(days)
	if dailyAverage > HighDailyAverage {
		out = append(out, MsgMoreStimulation)
	} else if dailyAverage < LowDailyAverage {
		out = append(out, MsgGreatProgress)
	}

	if len(out) == 0 {
		out = append(out, MsgKeepMonitoring)
	}
	return out
}
