package models

import "time"

// LabelCount is one entry of a frequency distribution
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailySummary holds the same-day aggregate shown on the dashboard
type DailySummary struct {
	TotalToday         int     `json:"total_today"`
	AverageIntensity   float64 `json:"average_intensity"`
	MostCommonBehavior string  `json:"most_common_behavior"`
	MostCommonTrigger  string  `json:"most_common_trigger"`
}

// TrendPoint is one day's bucket in a trend series
type TrendPoint struct {
	Date  time.Time `json:"date"` // local midnight of the bucket's day
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// IntensityLevel is the occurrence count for a single intensity value
type IntensityLevel struct {
	Level int    `json:"level"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// IntensityStats holds per-level counts (always levels 1 through 5) and the mean
type IntensityStats struct {
	Levels  []IntensityLevel `json:"levels"`
	Average float64          `json:"average"`
}

// Count returns the number of events recorded at the given level
func (s IntensityStats) Count(level int) int {
	for _, l := range s.Levels {
		if l.Level == level {
			return l.Count
		}
	}
	return 0
}

// InsightsReport is the full analysis of a look-back window
type InsightsReport struct {
	WindowDays       int            `json:"window_days"`
	TotalEvents      int            `json:"total_events"`
	AverageIntensity float64        `json:"average_intensity"`
	DailyAverage     float64        `json:"daily_average"`
	Trend            []TrendPoint   `json:"trend"`
	TypeDistribution []LabelCount   `json:"type_distribution"`
	TopTriggers      []LabelCount   `json:"top_triggers"`
	Intensity        IntensityStats `json:"intensity"`
	Recommendations  []string       `json:"recommendations"`
	ComputedAt       time.Time      `json:"computed_at"`
	DataSufficient   bool           `json:"data_sufficient"`
}

// DashboardResponse is the API response for the dashboard view
type DashboardResponse struct {
	Summary       DailySummary    `json:"summary"`
	TodayEvents   []BehaviorEvent `json:"today_events"`
	QuickAddTypes []CatalogEntry  `json:"quick_add_types"`
}

// HistoryResponse is the API response for the filtered history view
type HistoryResponse struct {
	Events         []BehaviorEvent `json:"events"`
	Total          int             `json:"total"`
	Matched        int             `json:"matched"`
	AvailableTypes []string        `json:"available_types"`
}
