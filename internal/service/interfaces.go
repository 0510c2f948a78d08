// Package service defines the contracts between the classification engine
// and its collaborators: catalog persistence, lost-demand recording and the
// analytics sink.
package service

import (
	"context"
	"time"

	"github.com/partsense/partsense/internal/model"
)

// DemandFilter defines filtering options for lost-demand queries.
type DemandFilter struct {
	Since *time.Time
	Limit int
}

// CatalogStore is the persistence contract for catalog items.
type CatalogStore interface {
	SaveItems(ctx context.Context, items []model.CatalogItem) error
	GetItems(ctx context.Context) ([]model.CatalogItem, error)
	GetItemByID(ctx context.Context, id string) (*model.CatalogItem, error)
	GetItemsByVehicle(ctx context.Context, vehicle string) ([]model.CatalogItem, error)
	CountItems(ctx context.Context) (int, error)
}

// DemandRecorder persists queries the catalog could not serve, so that
// purchasing can see what customers asked for and never got.
type DemandRecorder interface {
	RecordDemand(ctx context.Context, record model.DemandRecord) error
	TopDemand(ctx context.Context, filter DemandFilter) ([]model.DemandSummary, error)
}

// EventSink receives analytics events derived from classifications. A sink
// must tolerate duplicate delivery; the caller retries on error.
type EventSink interface {
	Publish(ctx context.Context, event model.AnalyticsEvent) error
}

// Storage is the full persistence contract: catalog, demand and the event
// journal together, plus database lifecycle.
type Storage interface {
	CatalogStore
	DemandRecorder
	SaveEvent(ctx context.Context, event model.AnalyticsEvent) error
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
