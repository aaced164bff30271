package memory

import (
	"context"
	"sync"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/seed"
)

// CatalogRepository keeps both catalogs in memory
type CatalogRepository struct {
	mu        sync.RWMutex
	behaviors catalog
	triggers  catalog
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository returns catalogs seeded with the given names
func NewCatalogRepository(c seed.Catalogs) *CatalogRepository {
	r := &CatalogRepository{}
	for _, name := range c.BehaviorTypes {
		r.behaviors.add(name, false)
	}
	for _, name := range c.TriggerTypes {
		r.triggers.add(name, false)
	}
	return r
}

func (r *CatalogRepository) ListBehaviorTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("list behavior types", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.behaviors.list(), nil
}

func (r *CatalogRepository) ListTriggerTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("list trigger types", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.triggers.list(), nil
}

func (r *CatalogRepository) CreateBehaviorType(ctx context.Context, name string) (*models.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("create behavior type", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.behaviors.add(name, true)
	return &e, nil
}

func (r *CatalogRepository) CreateTriggerType(ctx context.Context, name string) (*models.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("create trigger type", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.triggers.add(name, true)
	return &e, nil
}

func (r *CatalogRepository) DeleteBehaviorType(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return repository.Wrap("delete behavior type", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.behaviors.remove(id)
}

func (r *CatalogRepository) DeleteTriggerType(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return repository.Wrap("delete trigger type", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.triggers.remove(id)
}

type catalog struct {
	entries []models.CatalogEntry
	nextID  int64
}

func (c *catalog) add(name string, custom bool) models.CatalogEntry {
	if c.nextID == 0 {
		c.nextID = 1
	}
	e := models.CatalogEntry{ID: c.nextID, Name: name, IsCustom: custom}
	c.nextID++
	c.entries = append(c.entries, e)
	return e
}

func (c *catalog) list() []models.CatalogEntry {
	out := make([]models.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *catalog) remove(id int64) error {
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
