package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/partsense/partsense/internal/model"
)

// SaveEvent appends an analytics event to the journal. Params are stored as
// JSON so the journal survives schema changes in the event payloads.
func (s *SQLiteStorage) SaveEvent(ctx context.Context, event model.AnalyticsEvent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEvent(event); err != nil {
		return err
	}

	params, err := json.Marshal(event.Params)
	if err != nil {
		return fmt.Errorf("failed to marshal event params: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO search_events (name, params)
		VALUES (?, ?)
	`, string(event.Name), string(params)); err != nil {
		return fmt.Errorf("failed to save event: %w", wrapBusy(err))
	}
	return nil
}

// CountEventsByName returns how many events of each name the journal holds.
func (s *SQLiteStorage) CountEventsByName(ctx context.Context) (map[model.EventKind]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, COUNT(*)
		FROM search_events
		GROUP BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.EventKind]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[model.EventKind(name)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event counts: %w", err)
	}
	return counts, nil
}
