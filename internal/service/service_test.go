package service

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 45, 0, time.UTC)

func fixedClock() Clock {
	return func() time.Time { return fixedNow }
}

var nopLog = logger.Nop()

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func timePtr(t time.Time) *time.Time {
	return &t
}

var errStoreDown = errors.New("connection refused")

// failingEventRepository fails every call with a wrapped storage error
type failingEventRepository struct{}

func (failingEventRepository) List(ctx context.Context) ([]models.BehaviorEvent, error) {
	return nil, repository.Wrap("list events", errStoreDown)
}

func (failingEventRepository) Get(ctx context.Context, id int64) (*models.BehaviorEvent, error) {
	return nil, repository.Wrap("get event", errStoreDown)
}

func (failingEventRepository) Create(ctx context.Context, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	return nil, repository.Wrap("create event", errStoreDown)
}

func (failingEventRepository) Update(ctx context.Context, id int64, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	return nil, repository.Wrap("update event", errStoreDown)
}

func (failingEventRepository) Delete(ctx context.Context, id int64) error {
	return repository.Wrap("delete event", errStoreDown)
}
