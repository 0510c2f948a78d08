package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/partsense/partsense/internal/model"
	"github.com/partsense/partsense/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvent(t *testing.T) {
	tests := []struct {
		name       string
		analysis   model.QueryAnalysis
		intent     string
		wantOK     bool
		wantKind   model.EventKind
		wantParams map[string]any
	}{
		{
			name: "high confidence emits nothing",
			analysis: model.QueryAnalysis{
				Query:      "klocki bmw e90",
				Confidence: model.ConfidenceHigh,
			},
			wantOK: false,
		},
		{
			name: "no match becomes lost demand",
			analysis: model.QueryAnalysis{
				Query:          "klocki ferrari",
				TokenValidity:  95,
				BestMatchScore: 40,
				Confidence:     model.ConfidenceNoMatch,
				Suggestion:     model.SuggestionLuxuryBrandMissing,
				HasLuxuryBrand: true,
			},
			intent:   "klocki ferrari",
			wantOK:   true,
			wantKind: model.EventLostDemand,
			wantParams: map[string]any{
				"query":             "klocki ferrari",
				"token_validity":    95.0,
				"best_match_score":  40,
				"confidence_level":  "NO_MATCH",
				"potential_product": "klocki ferrari",
				"luxury_brand":      true,
			},
		},
		{
			name: "medium confidence becomes typo corrected",
			analysis: model.QueryAnalysis{
				Query:          "kloki boscz",
				TokenValidity:  80,
				BestMatchScore: 75,
				Confidence:     model.ConfidenceMedium,
				Suggestion:     model.SuggestionTypoCorrection,
				Matches: []model.MatchCandidate{
					{Item: model.CatalogItem{Name: "Klocki hamulcowe Bosch"}, Score: 75},
				},
			},
			wantOK:   true,
			wantKind: model.EventTypoCorrected,
			wantParams: map[string]any{
				"query":             "kloki boscz",
				"token_validity":    80.0,
				"best_match_score":  75,
				"confidence_level":  "MEDIUM",
				"suggested_product": "Klocki hamulcowe Bosch",
			},
		},
		{
			name: "low confidence becomes search failure",
			analysis: model.QueryAnalysis{
				Query:      "asdasdasd",
				Confidence: model.ConfidenceLow,
				Suggestion: model.SuggestionNonsensical,
				IsNonsense: true,
			},
			wantOK:   true,
			wantKind: model.EventSearchFailure,
			wantParams: map[string]any{
				"query":            "asdasdasd",
				"token_validity":   0.0,
				"best_match_score": 0,
				"confidence_level": "LOW",
				"reason":           "nonsensical",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := BuildEvent(tt.analysis, tt.intent)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantKind, event.Name)
			assert.Equal(t, tt.wantParams, event.Params)
		})
	}
}

type captureSink struct {
	events []model.AnalyticsEvent
	err    error
}

func (s *captureSink) Publish(_ context.Context, event model.AnalyticsEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func TestFanOut(t *testing.T) {
	first := &captureSink{}
	second := &captureSink{}
	sink := NewFanOut(first, second)

	event := model.AnalyticsEvent{Name: model.EventSearchFailure}
	require.NoError(t, sink.Publish(context.Background(), event))
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
}

func TestFanOutStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	first := &captureSink{err: boom}
	second := &captureSink{}
	sink := NewFanOut(first, second)

	err := sink.Publish(context.Background(), model.AnalyticsEvent{Name: model.EventLostDemand})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, second.events)
}

var _ service.EventSink = (*captureSink)(nil)
