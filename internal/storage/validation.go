// Package storage provides the data persistence layer: the catalog snapshot,
// the lost-demand log and the analytics event journal, all in one SQLite
// database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/partsense/partsense/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrEmptySlice       = errors.New("slice cannot be empty")
	ErrInvalidItem      = errors.New("invalid catalog item")
	ErrInvalidDemand    = errors.New("invalid demand record")
	ErrInvalidEvent     = errors.New("invalid analytics event")
	ErrSchemaVersion    = errors.New("database schema version mismatch")
	ErrItemNotFound     = errors.New("catalog item not found")
	ErrNegativeQuantity = errors.New("price and stock cannot be negative")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateItems validates a slice of catalog items.
func validateItems(items []model.CatalogItem) error {
	if items == nil {
		return fmt.Errorf("%w: items", ErrNilParameter)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: items", ErrEmptySlice)
	}

	for i, item := range items {
		if err := validateItem(item); err != nil {
			return fmt.Errorf("item at index %d: %w", i, err)
		}
	}
	return nil
}

// validateItem validates a single catalog item.
func validateItem(item model.CatalogItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidItem)
	}
	if item.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidItem)
	}
	if item.Category == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidItem)
	}
	if item.Vehicle == "" {
		return fmt.Errorf("%w: missing vehicle type", ErrInvalidItem)
	}
	if item.Price < 0 || item.Stock < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeQuantity, item.ID)
	}
	return nil
}

// validateDemand validates a demand record before persistence.
func validateDemand(record model.DemandRecord) error {
	if strings.TrimSpace(record.Query) == "" {
		return fmt.Errorf("%w: missing query", ErrInvalidDemand)
	}
	if strings.TrimSpace(record.Intent) == "" {
		return fmt.Errorf("%w: missing intent", ErrInvalidDemand)
	}
	if record.Suggestion == "" {
		return fmt.Errorf("%w: missing suggestion type", ErrInvalidDemand)
	}
	return nil
}

// validateEvent validates an analytics event before journaling.
func validateEvent(event model.AnalyticsEvent) error {
	if event.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidEvent)
	}
	return nil
}
