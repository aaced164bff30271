package service

import (
	"context"
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/analytics"
	"github.com/JonnyWalker81/pawlog/backend/internal/models"
)

// BehaviorService defines the business logic for logging behavior events
type BehaviorService interface {
	LogBehavior(ctx context.Context, req *models.BehaviorEventRequest) (*models.BehaviorEvent, error)
	QuickAdd(ctx context.Context, req *models.QuickAddRequest) (*models.BehaviorEvent, error)
	GetBehavior(ctx context.Context, id int64) (*models.BehaviorEvent, error)
	ListBehaviors(ctx context.Context) ([]models.BehaviorEvent, error)
	UpdateBehavior(ctx context.Context, id int64, req *models.BehaviorEventRequest) (*models.BehaviorEvent, error)
	DeleteBehavior(ctx context.Context, id int64) error
}

// CatalogService defines the business logic for behavior and trigger types
type CatalogService interface {
	ListBehaviorTypes(ctx context.Context) ([]models.CatalogEntry, error)
	ListTriggerTypes(ctx context.Context) ([]models.CatalogEntry, error)
	CreateBehaviorType(ctx context.Context, req *models.CreateCatalogEntryRequest) (*models.CatalogEntry, error)
	CreateTriggerType(ctx context.Context, req *models.CreateCatalogEntryRequest) (*models.CatalogEntry, error)
	DeleteBehaviorType(ctx context.Context, id int64) error
	DeleteTriggerType(ctx context.Context, id int64) error
}

// AnalyticsService builds the dashboard, history and insights views
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
	History(ctx context.Context, filter analytics.FilterSpec) (*models.HistoryResponse, error)
	Insights(ctx context.Context, days int) (*models.InsightsReport, error)
}

// Clock returns the current time in the zone that defines calendar days
type Clock func() time.Time

// SystemClock reads the wall clock in loc
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}
