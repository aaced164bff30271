package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
	"github.com/JonnyWalker81/pawlog/backend/internal/metrics"
	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
)

type behaviorService struct {
	eventRepo repository.EventRepository
	now       Clock
	log       logger.Logger
	metrics   *metrics.Metrics
}

// NewBehaviorService creates a new behavior service. m may be nil.
func NewBehaviorService(eventRepo repository.EventRepository, now Clock, log logger.Logger, m *metrics.Metrics) BehaviorService {
	return &behaviorService{
		eventRepo: eventRepo,
		now:       now,
		log:       log,
		metrics:   m,
	}
}

func (s *behaviorService) LogBehavior(ctx context.Context, req *models.BehaviorEventRequest) (*models.BehaviorEvent, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.log.WithContext(ctx).Error("failed to log behavior", logger.Err(err))
		return nil, err
	}

	s.metrics.BehaviorLogged(metrics.SourceForm)
	s.log.WithContext(ctx).Info("behavior logged",
		logger.EventID(created.ID),
		logger.String("type", created.Type),
		logger.Int("intensity", created.Intensity),
	)
	return created, nil
}

func (s *behaviorService) QuickAdd(ctx context.Context, req *models.QuickAddRequest) (*models.BehaviorEvent, error) {
	behaviorType := strings.TrimSpace(req.Type)
	if behaviorType == "" {
		v := &ValidationError{}
		v.add("type", "is required", "required")
		return nil, v
	}

	notes := models.QuickAddNotes
	event := &models.BehaviorEvent{
		Type:      behaviorType,
		Trigger:   models.QuickAddTrigger,
		Intensity: models.QuickAddIntensity,
		Timestamp: s.now().Truncate(time.Minute),
		Notes:     &notes,
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.log.WithContext(ctx).Error("failed to quick-add behavior", logger.Err(err))
		return nil, err
	}

	s.metrics.BehaviorLogged(metrics.SourceQuickAdd)
	s.log.WithContext(ctx).Info("behavior quick-added",
		logger.EventID(created.ID),
		logger.String("type", created.Type),
	)
	return created, nil
}

func (s *behaviorService) GetBehavior(ctx context.Context, id int64) (*models.BehaviorEvent, error) {
	return s.eventRepo.Get(ctx, id)
}

// ListBehaviors returns every event, newest first
func (s *behaviorService) ListBehaviors(ctx context.Context) ([]models.BehaviorEvent, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.log.WithContext(ctx).Error("failed to list behaviors", logger.Err(err))
		return nil, err
	}
	sortNewestFirst(events)
	return events, nil
}

func (s *behaviorService) UpdateBehavior(ctx context.Context, id int64, req *models.BehaviorEventRequest) (*models.BehaviorEvent, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.ID = id

	updated, err := s.eventRepo.Update(ctx, id, event)
	if err != nil {
		if !repository.IsNotFound(err) {
			s.log.WithContext(ctx).Error("failed to update behavior", logger.EventID(id), logger.Err(err))
		}
		return nil, err
	}

	s.log.WithContext(ctx).Info("behavior updated", logger.EventID(id))
	return updated, nil
}

func (s *behaviorService) DeleteBehavior(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if !repository.IsNotFound(err) {
			s.log.WithContext(ctx).Error("failed to delete behavior", logger.EventID(id), logger.Err(err))
		}
		return err
	}

	s.log.WithContext(ctx).Info("behavior deleted", logger.EventID(id))
	return nil
}

// eventFromRequest validates req and builds the event to store. Every
// invalid field is reported at once.
func eventFromRequest(req *models.BehaviorEventRequest) (*models.BehaviorEvent, error) {
	v := &ValidationError{}

	event := &models.BehaviorEvent{
		Type:          strings.TrimSpace(req.Type),
		CustomType:    strings.TrimSpace(req.CustomType),
		Trigger:       strings.TrimSpace(req.Trigger),
		CustomTrigger: strings.TrimSpace(req.CustomTrigger),
		Intensity:     req.Intensity,
		Location:      trimmedOrNil(req.Location),
		Duration:      req.Duration,
		Notes:         trimmedOrNil(req.Notes),
	}

	if event.Type == "" {
		v.add("type", "is required", "required")
	} else if event.Type == models.CustomSentinel && event.CustomType == "" {
		v.add("custom_type", "is required when type is custom", "required")
	} else if event.Type != models.CustomSentinel && event.CustomType != "" {
		v.add("custom_type", "only allowed when type is custom", "not_allowed")
	}

	if event.Trigger == "" {
		v.add("trigger", "is required", "required")
	} else if event.Trigger == models.CustomSentinel && event.CustomTrigger == "" {
		v.add("custom_trigger", "is required when trigger is custom", "required")
	} else if event.Trigger != models.CustomSentinel && event.CustomTrigger != "" {
		v.add("custom_trigger", "only allowed when trigger is custom", "not_allowed")
	}

	if event.Intensity < models.MinIntensity || event.Intensity > models.MaxIntensity {
		v.add("intensity", fmt.Sprintf("must be between %d and %d", models.MinIntensity, models.MaxIntensity), "out_of_range")
	}

	if req.Timestamp == nil || req.Timestamp.IsZero() {
		v.add("timestamp", "is required", "required")
	} else {
		event.Timestamp = req.Timestamp.Truncate(time.Minute)
	}

	if req.Duration != nil && *req.Duration <= 0 {
		v.add("duration", "must be a positive number of minutes", "out_of_range")
	}

	if err := v.errOrNil(); err != nil {
		return nil, err
	}
	return event, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// sortNewestFirst orders by timestamp descending, newer ids first on ties
func sortNewestFirst(events []models.BehaviorEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.After(events[j].Timestamp)
		}
		return events[i].ID > events[j].ID
	})
}
