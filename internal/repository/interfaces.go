package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// EventRepository defines the interface for behavior event data access
type EventRepository interface {
	List(ctx context.Context) ([]models.BehaviorEvent, error)
	Get(ctx context.Context, id int64) (*models.BehaviorEvent, error)
	Create(ctx context.Context, event *models.BehaviorEvent) (*models.BehaviorEvent, error)
	Update(ctx context.Context, id int64, event *models.BehaviorEvent) (*models.BehaviorEvent, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogRepository defines the interface for the behavior type and trigger
// type catalogs
type CatalogRepository interface {
	ListBehaviorTypes(ctx context.Context) ([]models.CatalogEntry, error)
	ListTriggerTypes(ctx context.Context) ([]models.CatalogEntry, error)
	CreateBehaviorType(ctx context.Context, name string) (*models.CatalogEntry, error)
	CreateTriggerType(ctx context.Context, name string) (*models.CatalogEntry, error)
	DeleteBehaviorType(ctx context.Context, id int64) error
	DeleteTriggerType(ctx context.Context, id int64) error
}
