package analytics

import (
	"sort"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// TopTriggerLimit is how many triggers the insights view ranks
const TopTriggerLimit = 5

// TypeDistribution counts events per effective type. Entries come back in
// first-seen order; consumers sort or color them as they need.
func TypeDistribution(events []models.BehaviorEvent) []models.LabelCount {
	t := newTally()
	for _, e := range events {
		t.add(EffectiveType(e).Display())
	}
	return t.counts()
}

// TopTriggers counts events per effective trigger and returns the limit most
// frequent, highest first. Equal counts keep first-seen order. A non-positive
// limit returns every trigger.
func TopTriggers(events []models.BehaviorEvent, limit int) []models.LabelCount {
	t := newTally()
	for _, e := range events {
		t.add(EffectiveTrigger(e).Display())
	}
	return t.ranked(limit)
}

// TypeOptions lists the distinct effective types in events, sorted, for
// populating the history type filter.
func TypeOptions(events []models.BehaviorEvent) []string {
	counts := TypeDistribution(events)
	out := make([]string, 0, len(counts))
	for _, c := range counts {
		out = append(out, c.Label)
	}
	sort.Strings(out)
	return out
}
