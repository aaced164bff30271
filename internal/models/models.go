package models

import "time"

// CustomSentinel marks a type or trigger whose display label lives in the
// matching custom_* field.
const CustomSentinel = "custom"

// Quick-add defaults used when a behavior is logged with a single tap
const (
	QuickAddTrigger   = "Unknown"
	QuickAddIntensity = 3
	QuickAddNotes     = "Quick logged via dashboard"
)

// Intensity bounds
const (
	MinIntensity = 1
	MaxIntensity = 5
)

// BehaviorEvent represents one logged behavior incident
type BehaviorEvent struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"`
	CustomType    string    `json:"custom_type,omitempty"`
	Trigger       string    `json:"trigger"`
	CustomTrigger string    `json:"custom_trigger,omitempty"`
	Intensity     int       `json:"intensity"`
	Timestamp     time.Time `json:"timestamp"` // when the behavior happened, not when it was logged
	Location      *string   `json:"location,omitempty"`
	Duration      *int      `json:"duration,omitempty"` // minutes
	Notes         *string   `json:"notes,omitempty"`
}

// CatalogEntry is a behavior type or trigger type available for logging
type CatalogEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsCustom bool   `json:"is_custom"`
}

// BehaviorEventRequest is the body for both creating and replacing an event.
// Updates replace every mutable field; the id is taken from the path.
type BehaviorEventRequest struct {
	Type          string     `json:"type"`
	CustomType    string     `json:"custom_type"`
	Trigger       string     `json:"trigger"`
	CustomTrigger string     `json:"custom_trigger"`
	Intensity     int        `json:"intensity"`
	Timestamp     *time.Time `json:"timestamp"`
	Location      *string    `json:"location"`
	Duration      *int       `json:"duration"`
	Notes         *string    `json:"notes"`
}

// QuickAddRequest represents a one-tap log for a catalog behavior
type QuickAddRequest struct {
	Type string `json:"type" binding:"required"`
}

// CreateCatalogEntryRequest represents the request to add a custom behavior or trigger type
type CreateCatalogEntryRequest struct {
	Name string `json:"name" binding:"required"`
}
