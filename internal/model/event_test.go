package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventFor(t *testing.T) {
	tests := []struct {
		name       string
		confidence ConfidenceLevel
		wantKind   EventKind
		wantEmit   bool
	}{
		{
			name:       "high confidence emits nothing",
			confidence: ConfidenceHigh,
			wantEmit:   false,
		},
		{
			name:       "medium confidence emits typo corrected",
			confidence: ConfidenceMedium,
			wantKind:   EventTypoCorrected,
			wantEmit:   true,
		},
		{
			name:       "low confidence emits search failure",
			confidence: ConfidenceLow,
			wantKind:   EventSearchFailure,
			wantEmit:   true,
		},
		{
			name:       "no match emits lost demand",
			confidence: ConfidenceNoMatch,
			wantKind:   EventLostDemand,
			wantEmit:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, emit := EventFor(QueryAnalysis{Confidence: tt.confidence})
			assert.Equal(t, tt.wantEmit, emit)
			if tt.wantEmit {
				assert.Equal(t, tt.wantKind, kind)
			}
		})
	}
}
