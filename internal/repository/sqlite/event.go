package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
)

const eventColumns = `id, type, custom_type, "trigger", custom_trigger, intensity, timestamp, location, duration, notes`

func (d *DB) List(ctx context.Context) ([]models.BehaviorEvent, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+eventColumns+" FROM behavior_events ORDER BY id ASC")
	if err != nil {
		return nil, repository.Wrap("list events", errors.Wrap(err, "failed to query events"))
	}
	defer rows.Close()

	events := []models.BehaviorEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, repository.Wrap("list events", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Wrap("list events", errors.Wrap(err, "failed to iterate events"))
	}
	return events, nil
}

func (d *DB) Get(ctx context.Context, id int64) (*models.BehaviorEvent, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM behavior_events WHERE id = ?", id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, repository.Wrap("get event", err)
	}
	return e, nil
}

func (d *DB) Create(ctx context.Context, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	stmt := `
		INSERT INTO behavior_events (type, custom_type, "trigger", custom_trigger, intensity, timestamp, location, duration, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.ExecContext(ctx, stmt, eventArgs(event)...)
	if err != nil {
		return nil, repository.Wrap("create event", errors.Wrap(err, "failed to insert event"))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, repository.Wrap("create event", errors.Wrap(err, "failed to read event id"))
	}
	return d.Get(ctx, id)
}

func (d *DB) Update(ctx context.Context, id int64, event *models.BehaviorEvent) (*models.BehaviorEvent, error) {
	stmt := `
		UPDATE behavior_events
		SET type = ?, custom_type = ?, "trigger" = ?, custom_trigger = ?, intensity = ?,
			timestamp = ?, location = ?, duration = ?, notes = ?
		WHERE id = ?
	`
	res, err := d.db.ExecContext(ctx, stmt, append(eventArgs(event), id)...)
	if err != nil {
		return nil, repository.Wrap("update event", errors.Wrap(err, "failed to update event"))
	}
	if err := requireAffected(res); err != nil {
		return nil, repository.Wrap("update event", err)
	}
	return d.Get(ctx, id)
}

func (d *DB) Delete(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM behavior_events WHERE id = ?", id)
	if err != nil {
		return repository.Wrap("delete event", errors.Wrap(err, "failed to delete event"))
	}
	return repository.Wrap("delete event", requireAffected(res))
}

func eventArgs(e *models.BehaviorEvent) []any {
	var duration sql.NullInt64
	if e.Duration != nil {
		duration = sql.NullInt64{Int64: int64(*e.Duration), Valid: true}
	}
	return []any{
		e.Type,
		e.CustomType,
		e.Trigger,
		e.CustomTrigger,
		e.Intensity,
		e.Timestamp.UTC().Format(time.RFC3339),
		nullString(e.Location),
		duration,
		nullString(e.Notes),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*models.BehaviorEvent, error) {
	var (
		e         models.BehaviorEvent
		timestamp string
		location  sql.NullString
		duration  sql.NullInt64
		notes     sql.NullString
	)
	err := s.Scan(
		&e.ID,
		&e.Type,
		&e.CustomType,
		&e.Trigger,
		&e.CustomTrigger,
		&e.Intensity,
		&timestamp,
		&location,
		&duration,
		&notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan event")
	}

	ts, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timestamp on event %d", e.ID)
	}
	e.Timestamp = ts.UTC()

	if location.Valid {
		e.Location = &location.String
	}
	if duration.Valid {
		v := int(duration.Int64)
		e.Duration = &v
	}
	if notes.Valid {
		e.Notes = &notes.String
	}
	return &e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
