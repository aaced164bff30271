// Package memory provides in-process repositories for development and tests
package memory

import (
	"context"
	"sync"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
)

// EventRepository keeps behavior events in a slice guarded by a mutex.
// Records go in and come out as copies, so callers never share state with
// the store.
type EventRepository struct {
	mu     sync.RWMutex
	events []models.BehaviorEvent
	nextID int64
}

var _ repository.EventRepository = (*EventRepository)(nil)

// NewEventRepository returns a store pre-loaded with events. Ids already set
// on them are kept; later ids continue from the highest one.
func NewEventRepository(events ...models.BehaviorEvent) *EventRepository {
	r := &EventRepository{nextID: 1}
	for _, e := range events {
		if e.ID == 0 {
			e.ID = r.nextID
		}
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
		r.events = append(r.events, cloneEvent(e))
	}
	return r
}

func (r *EventRepository) List(ctx context.Context) ([]models.BehaviorEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("list events", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.BehaviorEvent, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, cloneEvent(e))
	}
	return out, nil
}

func (r *EventRepository) Get(ctx context.Context, id int64) (*models.BehaviorEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("get event", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	e := cloneEvent(r.events[i])
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("create event", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneEvent(*event)
	stored.ID = r.nextID
	r.nextID++
	r.events = append(r.events, stored)

	out := cloneEvent(stored)
	return &out, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("update event", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	stored := cloneEvent(*event)
	stored.ID = id
	r.events[i] = stored

	out := cloneEvent(stored)
	return &out, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return repository.Wrap("delete event", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.events = append(r.events[:i], r.events[i+1:]...)
	return nil
}

func (r *EventRepository) indexOf(id int64) int {
	for i := range r.events {
		if r.events[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneEvent copies the optional fields so no pointer is shared
func cloneEvent(e models.BehaviorEvent) models.BehaviorEvent {
	if e.Location != nil {
		v := *e.Location
		e.Location = &v
	}
	if e.Duration != nil {
		v := *e.Duration
		e.Duration = &v
	}
	if e.Notes != nil {
		v := *e.Notes
		e.Notes = &v
	}
	return e
}
