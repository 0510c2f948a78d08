// Package analytics turns classifications into analytics events and delivers
// them to configured sinks.
package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/partsense/partsense/internal/model"
	"github.com/partsense/partsense/internal/service"
)

// BuildEvent derives the analytics event for one classification, with the
// payload downstream dashboards expect. The boolean is false for HIGH
// confidence results, which emit nothing.
func BuildEvent(a model.QueryAnalysis, intent string) (model.AnalyticsEvent, bool) {
	kind, ok := model.EventFor(a)
	if !ok {
		return model.AnalyticsEvent{}, false
	}

	params := map[string]any{
		"query":            a.Query,
		"token_validity":   a.TokenValidity,
		"best_match_score": a.BestMatchScore,
		"confidence_level": string(a.Confidence),
	}

	switch kind {
	case model.EventLostDemand:
		params["potential_product"] = intent
		params["luxury_brand"] = a.HasLuxuryBrand
	case model.EventTypoCorrected:
		if len(a.Matches) > 0 {
			params["suggested_product"] = a.Matches[0].Item.Name
		}
	case model.EventSearchFailure:
		params["reason"] = string(a.Suggestion)
	}

	return model.AnalyticsEvent{Name: kind, Params: params}, true
}

// LogSink writes events to structured logs. It is the default sink for
// development setups without a journal database.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a log-backed event sink.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Publish logs the event.
func (s *LogSink) Publish(_ context.Context, event model.AnalyticsEvent) error {
	s.logger.Info("analytics event",
		"name", event.Name,
		"params", event.Params)
	return nil
}

// EventJournal is the slice of storage the journal sink needs.
type EventJournal interface {
	SaveEvent(ctx context.Context, event model.AnalyticsEvent) error
}

// JournalSink persists events to the storage journal.
type JournalSink struct {
	journal EventJournal
}

// NewJournalSink creates a storage-backed event sink.
func NewJournalSink(journal EventJournal) *JournalSink {
	return &JournalSink{journal: journal}
}

// Publish appends the event to the journal.
func (s *JournalSink) Publish(ctx context.Context, event model.AnalyticsEvent) error {
	if err := s.journal.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to journal event: %w", err)
	}
	return nil
}

// FanOut delivers each event to every sink, stopping at the first failure.
type FanOut struct {
	sinks []service.EventSink
}

// NewFanOut creates a sink that forwards to all given sinks.
func NewFanOut(sinks ...service.EventSink) *FanOut {
	return &FanOut{sinks: sinks}
}

// Publish forwards the event to every configured sink.
func (s *FanOut) Publish(ctx context.Context, event model.AnalyticsEvent) error {
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
