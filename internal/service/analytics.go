package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/pawlog/backend/internal/analytics"
	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
	"github.com/JonnyWalker81/pawlog/backend/internal/metrics"
	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
)

// MaxWindowDays caps the insights window
const MaxWindowDays = analytics.MaxWindowDays

// AnalyticsOptions tunes the views
type AnalyticsOptions struct {
	DefaultWindowDays int
	// QuickAddLimit caps the quick-add buttons; 0 shows every behavior type
	QuickAddLimit int
}

type analyticsService struct {
	eventRepo   repository.EventRepository
	catalogRepo repository.CatalogRepository
	now         Clock
	opts        AnalyticsOptions
	log         logger.Logger
	metrics     *metrics.Metrics
}

// NewAnalyticsService creates a new analytics service. m may be nil.
func NewAnalyticsService(
	eventRepo repository.EventRepository,
	catalogRepo repository.CatalogRepository,
	now Clock,
	opts AnalyticsOptions,
	log logger.Logger,
	m *metrics.Metrics,
) AnalyticsService {
	if opts.DefaultWindowDays <= 0 {
		opts.DefaultWindowDays = 30
	}
	if opts.DefaultWindowDays > MaxWindowDays {
		opts.DefaultWindowDays = MaxWindowDays
	}
	return &analyticsService{
		eventRepo:   eventRepo,
		catalogRepo: catalogRepo,
		now:         now,
		opts:        opts,
		log:         log,
		metrics:     m,
	}
}

// Dashboard loads events and the behavior catalog concurrently, then builds
// today's summary and the quick-add list.
func (s *analyticsService) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	var (
		events    []models.BehaviorEvent
		behaviors []models.CatalogEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.eventRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		behaviors, err = s.catalogRepo.ListBehaviorTypes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.WithContext(ctx).Error("failed to load dashboard", logger.Err(err))
		return nil, err
	}

	today := analytics.Today(events, s.now())
	// summarize in storage order so ties go to the earliest logged label
	summary := analytics.Summarize(today)
	sortNewestFirst(today)

	quickAdd := behaviors
	if s.opts.QuickAddLimit > 0 && len(quickAdd) > s.opts.QuickAddLimit {
		quickAdd = quickAdd[:s.opts.QuickAddLimit]
	}

	return &models.DashboardResponse{
		Summary:       summary,
		TodayEvents:   today,
		QuickAddTypes: quickAdd,
	}, nil
}

// History returns the log newest first, narrowed by filter
func (s *analyticsService) History(ctx context.Context, filter analytics.FilterSpec) (*models.HistoryResponse, error) {
	if filter.Intensity != 0 && (filter.Intensity < models.MinIntensity || filter.Intensity > models.MaxIntensity) {
		v := &ValidationError{}
		v.add("intensity", "must be between 1 and 5", "out_of_range")
		return nil, v
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.log.WithContext(ctx).Error("failed to load history", logger.Err(err))
		return nil, err
	}
	sortNewestFirst(events)

	matched := analytics.Filter(events, filter, s.now())

	return &models.HistoryResponse{
		Events:         matched,
		Total:          len(events),
		Matched:        len(matched),
		AvailableTypes: analytics.TypeOptions(events),
	}, nil
}

// Insights analyzes the last days days; a non-positive value uses the
// configured default window.
func (s *analyticsService) Insights(ctx context.Context, days int) (*models.InsightsReport, error) {
	if days <= 0 {
		days = s.opts.DefaultWindowDays
	}
	if days > MaxWindowDays {
		v := &ValidationError{}
		v.add("days", fmt.Sprintf("must be at most %d", MaxWindowDays), "out_of_range")
		return nil, v
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.log.WithContext(ctx).Error("failed to load insights", logger.Err(err))
		return nil, err
	}

	report := analytics.Analyze(events, days, s.now())
	s.metrics.InsightsComputed()
	s.log.WithContext(ctx).Debug("insights computed",
		logger.Int("window_days", days),
		logger.Int("total_events", report.TotalEvents),
	)
	return &report, nil
}
