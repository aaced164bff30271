package analytics

import (
	"math"
	"sort"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// tally counts labels in first-seen order. Ranking and "most common" lookups
// break ties by that order, never by map iteration.
type tally struct {
	index   map[string]int
	entries []models.LabelCount
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

// add counts one occurrence; empty labels are ignored
func (t *tally) add(label string) {
	if label == "" {
		return
	}
	if i, ok := t.index[label]; ok {
		t.entries[i].Count++
		return
	}
	t.index[label] = len(t.entries)
	t.entries = append(t.entries, models.LabelCount{Label: label, Count: 1})
}

// top returns the label with the highest count, the earliest one on ties
func (t *tally) top() string {
	best := ""
	bestCount := 0
	for _, e := range t.entries {
		if e.Count > bestCount {
			best = e.Label
			bestCount = e.Count
		}
	}
	return best
}

// counts returns the entries in first-seen order
func (t *tally) counts() []models.LabelCount {
	out := make([]models.LabelCount, len(t.entries))
	copy(out, t.entries)
	return out
}

// ranked returns the entries sorted by count descending, first-seen order on
// ties, truncated to limit when limit is positive.
func (t *tally) ranked(limit int) []models.LabelCount {
	out := t.counts()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// clampIntensity keeps malformed values from corrupting level counts
func clampIntensity(v int) int {
	if v < models.MinIntensity {
		return models.MinIntensity
	}
	if v > models.MaxIntensity {
		return models.MaxIntensity
	}
	return v
}

// meanIntensity returns the mean intensity rounded to one decimal, 0 for no events
func meanIntensity(events []models.BehaviorEvent) float64 {
	if len(events) == 0 {
		return 0
	}
	sum := 0
	for _, e := range events {
		sum += clampIntensity(e.Intensity)
	}
	return roundTenth(float64(sum) / float64(len(events)))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
