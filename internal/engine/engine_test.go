package engine

import (
	"testing"

	"github.com/partsense/partsense/internal/knowledge"
	"github.com/partsense/partsense/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.CatalogItem {
	return []model.CatalogItem{
		{
			ID:       "KH001",
			Name:     "Klocki hamulcowe Bosch BMW E90",
			Category: "hamulce",
			Vehicle:  "osobowy",
			Brand:    "Bosch",
			Model:    "0986494104",
			Price:    189,
			Stock:    45,
		},
		{
			ID:       "FO001",
			Name:     "Filtr oleju Mann HU719/7x",
			Category: "filtry",
			Vehicle:  "osobowy",
			Brand:    "Mann",
			Model:    "HU719/7x",
			Price:    62,
			Stock:    120,
		},
		{
			ID:       "MKH001",
			Name:     "Klocki hamulcowe EBC Yamaha R6",
			Category: "hamulce",
			Vehicle:  "motocykl",
			Brand:    "EBC",
			Model:    "FA252HH",
			Price:    145,
			Stock:    32,
		},
	}
}

func newTestEngine() *Engine {
	return New(knowledge.NewStore(), testCatalog(), nil)
}

func TestClassifyScenarios(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name           string
		query          string
		wantConfidence model.ConfidenceLevel
		wantSuggestion model.SuggestionType
	}{
		{
			name:           "exact catalog query",
			query:          "klocki bmw e90",
			wantConfidence: model.ConfidenceHigh,
			wantSuggestion: model.SuggestionExactMatch,
		},
		{
			name:           "known typos canonicalize before matching",
			query:          "kloki bosh",
			wantConfidence: model.ConfidenceHigh,
			wantSuggestion: model.SuggestionExactMatch,
		},
		{
			name:           "luxury brand the catalog lacks",
			query:          "klocki ferrari",
			wantConfidence: model.ConfidenceNoMatch,
			wantSuggestion: model.SuggestionLuxuryBrandMissing,
		},
		{
			name:           "keyboard mash",
			query:          "asdasdasd",
			wantConfidence: model.ConfidenceLow,
			wantSuggestion: model.SuggestionNonsensical,
		},
		{
			name:           "valid category with no stock",
			query:          "opony zimowe",
			wantConfidence: model.ConfidenceNoMatch,
			wantSuggestion: model.SuggestionModelMissing,
		},
		{
			name:           "full part number",
			query:          "filtr mann hu719/7x",
			wantConfidence: model.ConfidenceHigh,
			wantSuggestion: model.SuggestionExactMatch,
		},
		{
			name:           "model code the catalog lacks",
			query:          "klocki bmw e92",
			wantConfidence: model.ConfidenceNoMatch,
			wantSuggestion: model.SuggestionProductCodeMissing,
		},
		{
			name:           "category with a food word",
			query:          "klocki do pizzy",
			wantConfidence: model.ConfidenceLow,
			wantSuggestion: model.SuggestionNonsensical,
		},
		{
			name:           "category with an unknown vehicle word",
			query:          "tarcze do hondurasa",
			wantConfidence: model.ConfidenceNoMatch,
			wantSuggestion: model.SuggestionStructuralMissing,
		},
		{
			name:           "single digit",
			query:          "7",
			wantConfidence: model.ConfidenceLow,
			wantSuggestion: model.SuggestionNonsensical,
		},
		{
			name:           "empty query",
			query:          "",
			wantConfidence: model.ConfidenceLow,
			wantSuggestion: model.SuggestionNonsensical,
		},
		{
			name:           "conversational phrasing does not dilute",
			query:          "szukam klocki do bmw",
			wantConfidence: model.ConfidenceHigh,
			wantSuggestion: model.SuggestionExactMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Classify(tt.query, "")
			assert.Equal(t, tt.wantConfidence, got.Confidence, "confidence for %q", tt.query)
			assert.Equal(t, tt.wantSuggestion, got.Suggestion, "suggestion for %q", tt.query)
		})
	}
}

func TestClassifyAnalysisFields(t *testing.T) {
	e := newTestEngine()

	got := e.Classify("  Kloki BOSH e90 ", "")

	assert.Equal(t, "  Kloki BOSH e90 ", got.Query)
	assert.Equal(t, []string{"klocki", "bosch", "e90"}, got.Tokens)
	assert.InDelta(t, (90+100+60)/3.0, got.TokenValidity, 0.01)
	assert.True(t, got.HasProductCode)
	assert.False(t, got.HasLuxuryBrand)
	assert.False(t, got.IsNonsense)
	assert.False(t, got.IsStructural)
	require.NotEmpty(t, got.Matches)
	assert.Equal(t, "KH001", got.Matches[0].Item.ID)
	assert.Equal(t, got.Matches[0].Score, got.BestMatchScore)
}

func TestClassifyLuxuryFlag(t *testing.T) {
	e := newTestEngine()

	got := e.Classify("klocki ferrari", "")

	assert.True(t, got.HasLuxuryBrand)
	assert.Less(t, got.BestMatchScore, 60)
}

func TestClassifyVehicleFilter(t *testing.T) {
	e := newTestEngine()

	car := e.Classify("klocki hamulcowe", "osobowy")
	moto := e.Classify("klocki hamulcowe", "motocykl")

	require.NotEmpty(t, car.Matches)
	require.NotEmpty(t, moto.Matches)
	assert.Equal(t, "KH001", car.Matches[0].Item.ID)
	assert.Equal(t, "MKH001", moto.Matches[0].Item.ID)
}

func TestClassifyIsDeterministic(t *testing.T) {
	e := newTestEngine()

	first := e.Classify("klocki bmw e90", "")
	second := e.Classify("klocki bmw e90", "")
	assert.Equal(t, first, second)

	// Normalization differences share one cache entry and one result.
	third := e.Classify("  KLOCKI   bmw  E90 ", "")
	assert.Equal(t, first.Confidence, third.Confidence)
	assert.Equal(t, first.BestMatchScore, third.BestMatchScore)
	assert.Equal(t, first.Tokens, third.Tokens)
}

func TestClassifyCacheKeepsCallerQuery(t *testing.T) {
	e := newTestEngine()

	first := e.Classify("klocki bmw e90", "")
	second := e.Classify("  KLOCKI bmw E90 ", "")

	// A cache hit must not leak the first caller's spelling into the second
	// caller's analysis; everything but the raw query is shared.
	assert.Equal(t, "klocki bmw e90", first.Query)
	assert.Equal(t, "  KLOCKI bmw E90 ", second.Query)
	assert.Equal(t, first.Tokens, second.Tokens)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Suggestion, second.Suggestion)
	assert.Equal(t, first.Matches, second.Matches)
}

func TestClassifyTruncatesMatches(t *testing.T) {
	items := make([]model.CatalogItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, model.CatalogItem{
			ID:       string(rune('A' + i)),
			Name:     "Klocki hamulcowe",
			Category: "hamulce",
			Vehicle:  "osobowy",
		})
	}
	e := New(knowledge.NewStore(), items, nil)

	got := e.Classify("klocki", "")
	assert.Len(t, got.Matches, maxMatches)
}

func TestExtractIntent(t *testing.T) {
	kb := knowledge.NewStore()

	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "keeps domain tokens only", tokens: []string{"szukam", "klocki", "do", "bmw"}, want: "klocki bmw"},
		{name: "keeps model codes", tokens: []string{"klocki", "e90"}, want: "klocki e90"},
		{name: "falls back to everything", tokens: []string{"hondurasa"}, want: "hondurasa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIntent(kb, tt.tokens))
		})
	}
}
