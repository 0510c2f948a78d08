package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/partsense/partsense/internal/model"
)

// SaveItems upserts catalog items in a single transaction. An existing item
// keeps its row identity; name, price and stock are overwritten.
func (s *SQLiteStorage) SaveItems(ctx context.Context, items []model.CatalogItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_items (id, name, category, vehicle, brand, model, price, stock)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			vehicle = excluded.vehicle,
			brand = excluded.brand,
			model = excluded.model,
			price = excluded.price,
			stock = excluded.stock
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx,
			item.ID, item.Name, item.Category, item.Vehicle,
			item.Brand, item.Model, item.Price, item.Stock); err != nil {
			return fmt.Errorf("failed to save item %s: %w", item.ID, wrapBusy(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit items: %w", wrapBusy(err))
	}
	return nil
}

// GetItems returns the full catalog snapshot in stable ID order.
func (s *SQLiteStorage) GetItems(ctx context.Context) ([]model.CatalogItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryItems(ctx, `
		SELECT id, name, category, vehicle, brand, model, price, stock
		FROM catalog_items
		ORDER BY id
	`)
}

// GetItemByID returns a single catalog item.
func (s *SQLiteStorage) GetItemByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var item model.CatalogItem
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, vehicle, brand, model, price, stock
		FROM catalog_items
		WHERE id = ?
	`, id).Scan(&item.ID, &item.Name, &item.Category, &item.Vehicle,
		&item.Brand, &item.Model, &item.Price, &item.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", id, err)
	}
	return &item, nil
}

// GetItemsByVehicle returns items for one vehicle type. Universal parts are
// always included.
func (s *SQLiteStorage) GetItemsByVehicle(ctx context.Context, vehicle string) ([]model.CatalogItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(vehicle, "vehicle"); err != nil {
		return nil, err
	}
	return s.queryItems(ctx, `
		SELECT id, name, category, vehicle, brand, model, price, stock
		FROM catalog_items
		WHERE vehicle = ? OR vehicle = ?
		ORDER BY id
	`, vehicle, model.VehicleUniversal)
}

// CountItems returns the number of catalog items.
func (s *SQLiteStorage) CountItems(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

func (s *SQLiteStorage) queryItems(ctx context.Context, query string, args ...any) ([]model.CatalogItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.CatalogItem
	for rows.Next() {
		var item model.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Vehicle,
			&item.Brand, &item.Model, &item.Price, &item.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}
