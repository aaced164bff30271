// Package analytics turns a snapshot of behavior events into the views the
// app shows: filtered history, the same-day summary, trend series,
// distributions, intensity statistics and training recommendations.
//
// Every function in this package is pure. Inputs are never mutated and the
// same inputs always produce the same outputs, so results can be cached
// safely by callers.
package analytics

import "github.com/JonnyWalker81/pawlog/backend/internal/models"

// LabelKind tells whether a label came from a catalog or from free text
type LabelKind int

const (
	KindCanonical LabelKind = iota
	KindCustom
)

// Label is the display-resolved behavior type or trigger of an event
type Label struct {
	kind LabelKind
	text string
}

// Canonical returns a label naming a catalog entry
func Canonical(name string) Label {
	return Label{kind: KindCanonical, text: name}
}

// Custom returns a label holding user-entered free text
func Custom(text string) Label {
	return Label{kind: KindCustom, text: text}
}

// Kind reports where the label came from
func (l Label) Kind() LabelKind {
	return l.kind
}

// IsCustom reports whether the label is user-entered free text
func (l Label) IsCustom() bool {
	return l.kind == KindCustom
}

// Display returns the text shown to the user and used for aggregation
func (l Label) Display() string {
	return l.text
}

func (l Label) String() string {
	return l.text
}

// EffectiveType resolves the behavior label of an event: the custom text when
// present, otherwise the canonical type name.
func EffectiveType(e models.BehaviorEvent) Label {
	return resolve(e.Type, e.CustomType)
}

// EffectiveTrigger resolves the trigger label of an event the same way
func EffectiveTrigger(e models.BehaviorEvent) Label {
	return resolve(e.Trigger, e.CustomTrigger)
}

func resolve(canonical, custom string) Label {
	if custom != "" {
		return Custom(custom)
	}
	return Canonical(canonical)
}
