package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/pkg/supabase"
)

const eventsTable = "behavior_events"

type eventRepository struct {
	client *supabase.Client
}

// NewEventRepository creates a Supabase-backed event repository
func NewEventRepository(client *supabase.Client) EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) List(ctx context.Context) ([]models.BehaviorEvent, error) {
	query := map[string]interface{}{
		"order": "id.asc",
	}

	body, err := r.client.Query(ctx, eventsTable, query)
	if err != nil {
		return nil, Wrap("list events", err)
	}

	events, err := decodeEvents(body)
	if err != nil {
		return nil, Wrap("list events", err)
	}
	return events, nil
}

func (r *eventRepository) Get(ctx context.Context, id int64) (*models.BehaviorEvent, error) {
	query := map[string]interface{}{
		"id": fmt.Sprintf("eq.%d", id),
	}

	body, err := r.client.Query(ctx, eventsTable, query)
	if err != nil {
		return nil, Wrap("get event", err)
	}

	return firstEvent("get event", body)
}

func (r *eventRepository) Create(ctx context.Context, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	body, err := r.client.Insert(ctx, eventsTable, eventColumns(event))
	if err != nil {
		return nil, Wrap("create event", err)
	}

	created, err := firstEvent("create event", body)
	if IsNotFound(err) {
		return nil, Wrap("create event", fmt.Errorf("no event returned"))
	}
	return created, err
}

func (r *eventRepository) Update(ctx context.Context, id int64, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	body, err := r.client.Update(ctx, eventsTable, strconv.FormatInt(id, 10), eventColumns(event))
	if err != nil {
		return nil, Wrap("update event", err)
	}

	return firstEvent("update event", body)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	body, err := r.client.Delete(ctx, eventsTable, strconv.FormatInt(id, 10))
	if err != nil {
		return Wrap("delete event", err)
	}

	_, err = firstEvent("delete event", body)
	return err
}

// eventColumns maps every mutable field, including nil optionals, so an
// update fully replaces the stored row.
func eventColumns(e *models.BehaviorEvent) map[string]interface{} {
	return map[string]interface{}{
		"type":           e.Type,
		"custom_type":    e.CustomType,
		"trigger":        e.Trigger,
		"custom_trigger": e.CustomTrigger,
		"intensity":      e.Intensity,
		"timestamp":      e.Timestamp.UTC().Format(time.RFC3339),
		"location":       e.Location,
		"duration":       e.Duration,
		"notes":          e.Notes,
	}
}

func decodeEvents(body []byte) ([]models.BehaviorEvent, error) {
	var events []models.BehaviorEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return events, nil
}

func firstEvent(op string, body []byte) (*models.BehaviorEvent, error) {
	events, err := decodeEvents(body)
	if err != nil {
		return nil, Wrap(op, err)
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return &events[0], nil
}
