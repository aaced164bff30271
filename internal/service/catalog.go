package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	log         logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository, log logger.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		log:         log,
	}
}

func (s *catalogService) ListBehaviorTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.catalogRepo.ListBehaviorTypes(ctx)
}

func (s *catalogService) ListTriggerTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.catalogRepo.ListTriggerTypes(ctx)
}

func (s *catalogService) CreateBehaviorType(ctx context.Context, req *models.CreateCatalogEntryRequest) (*models.CatalogEntry, error) {
	return s.create(ctx, "behavior type", req, s.catalogRepo.ListBehaviorTypes, s.catalogRepo.CreateBehaviorType)
}

func (s *catalogService) CreateTriggerType(ctx context.Context, req *models.CreateCatalogEntryRequest) (*models.CatalogEntry, error) {
	return s.create(ctx, "trigger type", req, s.catalogRepo.ListTriggerTypes, s.catalogRepo.CreateTriggerType)
}

func (s *catalogService) DeleteBehaviorType(ctx context.Context, id int64) error {
	return s.delete(ctx, "behavior type", id, s.catalogRepo.DeleteBehaviorType)
}

func (s *catalogService) DeleteTriggerType(ctx context.Context, id int64) error {
	return s.delete(ctx, "trigger type", id, s.catalogRepo.DeleteTriggerType)
}

func (s *catalogService) create(
	ctx context.Context,
	kind string,
	req *models.CreateCatalogEntryRequest,
	list func(context.Context) ([]models.CatalogEntry, error),
	insert func(context.Context, string) (*models.CatalogEntry, error),
) (*models.CatalogEntry, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		v := &ValidationError{}
		v.add("name", "is required", "required")
		return nil, v
	}
	if name == models.CustomSentinel {
		v := &ValidationError{}
		v.add("name", fmt.Sprintf("%q is reserved", models.CustomSentinel), "reserved")
		return nil, v
	}

	existing, err := list(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, name) {
			return nil, fmt.Errorf("%s %q: %w", kind, e.Name, ErrConflict)
		}
	}

	entry, err := insert(ctx, name)
	if err != nil {
		s.log.WithContext(ctx).Error("failed to create "+kind, logger.String("name", name), logger.Err(err))
		return nil, err
	}

	s.log.WithContext(ctx).Info(kind+" created", logger.Int64("id", entry.ID), logger.String("name", entry.Name))
	return entry, nil
}

func (s *catalogService) delete(ctx context.Context, kind string, id int64, remove func(context.Context, int64) error) error {
	if err := remove(ctx, id); err != nil {
		if !repository.IsNotFound(err) {
			s.log.WithContext(ctx).Error("failed to delete "+kind, logger.Int64("id", id), logger.Err(err))
		}
		return err
	}
	s.log.WithContext(ctx).Info(kind+" deleted", logger.Int64("id", id))
	return nil
}
