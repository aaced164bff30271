package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/pkg/supabase"
)

const (
	behaviorTypesTable = "behavior_types"
	triggerTypesTable  = "trigger_types"
)

type catalogRepository struct {
	client *supabase.Client
}

// NewCatalogRepository creates a Supabase-backed catalog repository
func NewCatalogRepository(client *supabase.Client) CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) ListBehaviorTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	return r.list(ctx, behaviorTypesTable)
}

func (r *catalogRepository) ListTriggerTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	return r.list(ctx, triggerTypesTable)
}

func (r *catalogRepository) CreateBehaviorType(ctx context.Context, name string) (*models.CatalogEntry, error) {
	return r.create(ctx, behaviorTypesTable, name)
}

func (r *catalogRepository) CreateTriggerType(ctx context.Context, name string) (*models.CatalogEntry, error) {
	return r.create(ctx, triggerTypesTable, name)
}

func (r *catalogRepository) DeleteBehaviorType(ctx context.Context, id int64) error {
	return r.delete(ctx, behaviorTypesTable, id)
}

func (r *catalogRepository) DeleteTriggerType(ctx context.Context, id int64) error {
	return r.delete(ctx, triggerTypesTable, id)
}

func (r *catalogRepository) list(ctx context.Context, table string) ([]models.CatalogEntry, error) {
	query := map[string]interface{}{
		"order": "id.asc",
	}

	body, err := r.client.Query(ctx, table, query)
	if err != nil {
		return nil, Wrap("list "+table, err)
	}

	var entries []models.CatalogEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, Wrap("list "+table, fmt.Errorf("failed to unmarshal response: %w", err))
	}
	return entries, nil
}

func (r *catalogRepository) create(ctx context.Context, table, name string) (*models.CatalogEntry, error) {
	data := map[string]interface{}{
		"name":      name,
		"is_custom": true,
	}

	body, err := r.client.Insert(ctx, table, data)
	if err != nil {
		return nil, Wrap("create "+table, err)
	}

	var entries []models.CatalogEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, Wrap("create "+table, fmt.Errorf("failed to unmarshal response: %w", err))
	}
	if len(entries) == 0 {
		return nil, Wrap("create "+table, fmt.Errorf("no entry returned"))
	}
	return &entries[0], nil
}

func (r *catalogRepository) delete(ctx context.Context, table string, id int64) error {
	body, err := r.client.Delete(ctx, table, strconv.FormatInt(id, 10))
	if err != nil {
		return Wrap("delete "+table, err)
	}

	var entries []models.CatalogEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return Wrap("delete "+table, fmt.Errorf("failed to unmarshal response: %w", err))
	}
	if len(entries) == 0 {
		return ErrNotFound
	}
	return nil
}
