package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// FilterAll disables a string predicate
const FilterAll = "all"

// DateRange selects a time predicate for history filtering
type DateRange string

const (
	DateRangeAll       DateRange = "all"
	DateRangeToday     DateRange = "today"
	DateRangePastWeek  DateRange = "pastWeek"
	DateRangePastMonth DateRange = "pastMonth"
)

// ParseDateRange converts a query value to a DateRange. Empty and "all"
// disable the predicate; "week" and "month" are accepted as aliases.
func ParseDateRange(s string) (DateRange, error) {
	switch s {
	case "", "all":
		return DateRangeAll, nil
	case "today":
		return DateRangeToday, nil
	case "pastWeek", "week":
		return DateRangePastWeek, nil
	case "pastMonth", "month":
		return DateRangePastMonth, nil
	default:
		return "", fmt.Errorf("unknown date range %q", s)
	}
}

// FilterSpec describes the history filters. Zero values disable a predicate.
type FilterSpec struct {
	SearchText string
	DateRange  DateRange
	Type       string // exact effective type; "" or "all" disables
	Intensity  int    // exact intensity; 0 disables
}

// Active reports whether any predicate is enabled
func (s FilterSpec) Active() bool {
	return s.SearchText != "" ||
		(s.DateRange != "" && s.DateRange != DateRangeAll) ||
		(s.Type != "" && s.Type != FilterAll) ||
		s.Intensity != 0
}

// Filter returns the events matching every active predicate of spec, in their
// original order. now anchors the date predicates; its location defines the
// calendar day for DateRangeToday.
func Filter(events []models.BehaviorEvent, spec FilterSpec, now time.Time) []models.BehaviorEvent {
	match := spec.predicate(now)
	out := make([]models.BehaviorEvent, 0, len(events))
	for _, e := range events {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Today returns the events whose timestamp falls on now's calendar day
func Today(events []models.BehaviorEvent, now time.Time) []models.BehaviorEvent {
	return Filter(events, FilterSpec{DateRange: DateRangeToday}, now)
}

// DayBounds returns local midnight of t's day and of the following day
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func (s FilterSpec) predicate(now time.Time) func(models.BehaviorEvent) bool {
	var checks []func(models.BehaviorEvent) bool

	if s.SearchText != "" {
		needle := strings.ToLower(s.SearchText)
		checks = append(checks, func(e models.BehaviorEvent) bool {
			return containsFold(EffectiveType(e).Display(), needle) ||
				containsFold(EffectiveTrigger(e).Display(), needle) ||
				(e.Notes != nil && containsFold(*e.Notes, needle))
		})
	}

	switch s.DateRange {
	case DateRangeToday:
		start, end := DayBounds(now)
		checks = append(checks, func(e models.BehaviorEvent) bool {
			return !e.Timestamp.Before(start) && e.Timestamp.Before(end)
		})
	case DateRangePastWeek:
		checks = append(checks, since(now.AddDate(0, 0, -7)))
	case DateRangePastMonth:
		checks = append(checks, since(now.AddDate(0, 0, -30)))
	}

	if s.Type != "" && s.Type != FilterAll {
		checks = append(checks, func(e models.BehaviorEvent) bool {
			return EffectiveType(e).Display() == s.Type
		})
	}

	if s.Intensity != 0 {
		checks = append(checks, func(e models.BehaviorEvent) bool {
			return e.Intensity == s.Intensity
		})
	}

	return func(e models.BehaviorEvent) bool {
		for _, check := range checks {
			if !check(e) {
				return false
			}
		}
		return true
	}
}

func since(cutoff time.Time) func(models.BehaviorEvent) bool {
	return func(e models.BehaviorEvent) bool {
		return !e.Timestamp.Before(cutoff)
	}
}

// containsFold reports whether lowered needle occurs in s, ignoring case
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
