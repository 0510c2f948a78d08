package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/partsense/partsense/internal/model"
	"github.com/partsense/partsense/internal/service"
)

// RecordDemand persists one unserved query.
func (s *SQLiteStorage) RecordDemand(ctx context.Context, record model.DemandRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDemand(record); err != nil {
		return err
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// Timestamps are stored as RFC 3339 UTC strings so that aggregate
	// expressions like MAX(created_at) stay scannable and comparable.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lost_demand (query, intent, vehicle, suggestion, token_validity, has_luxury_brand, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.Query, record.Intent, record.Vehicle, string(record.Suggestion),
		record.TokenValidity, record.HasLuxuryBrand, createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to record demand: %w", wrapBusy(err))
	}
	return nil
}

// TopDemand aggregates lost demand by intent, most requested first.
func (s *SQLiteStorage) TopDemand(ctx context.Context, filter service.DemandFilter) ([]model.DemandSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT intent, COUNT(*) AS hits, MAX(created_at) AS last_seen
		FROM lost_demand
	`
	args := make([]any, 0, 2)
	if filter.Since != nil {
		query += ` WHERE created_at >= ?`
		args = append(args, filter.Since.UTC().Format(time.RFC3339Nano))
	}
	query += `
		GROUP BY intent
		ORDER BY hits DESC, last_seen DESC
	`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query demand: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []model.DemandSummary
	for rows.Next() {
		var summary model.DemandSummary
		var lastSeen string
		if err := rows.Scan(&summary.Intent, &summary.Count, &lastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan demand summary: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, lastSeen)
		if err != nil {
			return nil, fmt.Errorf("failed to parse demand timestamp %q: %w", lastSeen, err)
		}
		summary.LastSeen = ts
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate demand summaries: %w", err)
	}
	return summaries, nil
}
