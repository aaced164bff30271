package sqlite

import (
	"context"

	"github.com/pkg/errors"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
)

const (
	behaviorTypesTable = "behavior_types"
	triggerTypesTable  = "trigger_types"
)

func (d *DB) ListBehaviorTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	return d.listCatalog(ctx, behaviorTypesTable)
}

func (d *DB) ListTriggerTypes(ctx context.Context) ([]models.CatalogEntry, error) {
	return d.listCatalog(ctx, triggerTypesTable)
}

func (d *DB) CreateBehaviorType(ctx context.Context, name string) (*models.CatalogEntry, error) {
	return d.createCatalogEntry(ctx, behaviorTypesTable, name)
}

func (d *DB) CreateTriggerType(ctx context.Context, name string) (*models.CatalogEntry, error) {
	return d.createCatalogEntry(ctx, triggerTypesTable, name)
}

func (d *DB) DeleteBehaviorType(ctx context.Context, id int64) error {
	return d.deleteCatalogEntry(ctx, behaviorTypesTable, id)
}

func (d *DB) DeleteTriggerType(ctx context.Context, id int64) error {
	return d.deleteCatalogEntry(ctx, triggerTypesTable, id)
}

// table names below are package constants, never user input

func (d *DB) listCatalog(ctx context.Context, table string) ([]models.CatalogEntry, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT id, name, is_custom FROM "+table+" ORDER BY id ASC")
	if err != nil {
		return nil, repository.Wrap("list "+table, errors.Wrapf(err, "failed to query %s", table))
	}
	defer rows.Close()

	entries := []models.CatalogEntry{}
	for rows.Next() {
		var e models.CatalogEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.IsCustom); err != nil {
			return nil, repository.Wrap("list "+table, errors.Wrapf(err, "failed to scan %s", table))
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Wrap("list "+table, errors.Wrapf(err, "failed to iterate %s", table))
	}
	return entries, nil
}

func (d *DB) createCatalogEntry(ctx context.Context, table, name string) (*models.CatalogEntry, error) {
	res, err := d.db.ExecContext(ctx, "INSERT INTO "+table+" (name, is_custom) VALUES (?, 1)", name)
	if err != nil {
		return nil, repository.Wrap("create "+table, errors.Wrapf(err, "failed to insert into %s", table))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, repository.Wrap("create "+table, errors.Wrap(err, "failed to read id"))
	}
	return &models.CatalogEntry{ID: id, Name: name, IsCustom: true}, nil
}

func (d *DB) deleteCatalogEntry(ctx context.Context, table string, id int64) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return repository.Wrap("delete "+table, errors.Wrapf(err, "failed to delete from %s", table))
	}
	return repository.Wrap("delete "+table, requireAffected(res))
}
