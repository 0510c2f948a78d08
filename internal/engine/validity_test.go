package engine

import (
	"testing"

	"github.com/partsense/partsense/internal/knowledge"
	"github.com/stretchr/testify/assert"
)

func TestTokenValidity(t *testing.T) {
	kb := knowledge.NewStore()

	tests := []struct {
		name   string
		tokens []string
		want   float64
	}{
		{name: "empty", tokens: nil, want: 0},
		{name: "brand", tokens: []string{"bosch"}, want: 100},
		{name: "luxury brand", tokens: []string{"ferrari"}, want: 95},
		{name: "category", tokens: []string{"klocki"}, want: 90},
		{name: "car model", tokens: []string{"golf"}, want: 85},
		{name: "motorcycle term", tokens: []string{"yamaha"}, want: 80},
		{name: "common term", tokens: []string{"zimowe"}, want: 70},
		{name: "code pattern", tokens: []string{"e90"}, want: 60},
		{name: "general word", tokens: []string{"silnik"}, want: 50},
		{name: "mean over mixed tokens", tokens: []string{"klocki", "bmw", "e90"}, want: (90 + 100 + 60) / 3.0},
		{name: "category pair", tokens: []string{"opony", "zimowe"}, want: 80},
		{name: "unrecognized token scores zero", tokens: []string{"xqwzkrp"}, want: 0},
		{name: "single digit scores zero", tokens: []string{"5"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TokenValidity(kb, tt.tokens), 0.01)
		})
	}
}

func TestTokenValidityProximityFallback(t *testing.T) {
	kb := knowledge.NewStore()

	// One edit from a category ("klocki") lands in the typo tier.
	assert.InDelta(t, 75, TokenValidity(kb, []string{"kloczki"}), 0.01)

	// One edit from a brand scores higher than one edit from a category.
	assert.Greater(t,
		TokenValidity(kb, []string{"boscz"}),
		TokenValidity(kb, []string{"kloczki"}))
}

func TestTokenValidityMonotonicity(t *testing.T) {
	kb := knowledge.NewStore()

	// Adding a recognizable brand or category token never lowers the score of
	// an unrecognized query.
	bases := [][]string{
		{"hondurasa"},
		{"xqwzkrp"},
		{"hondurasa", "xqwzkrp"},
		{"blarg", "fnord", "quux"},
	}
	additions := []string{"bosch", "klocki", "ferrari"}

	for _, base := range bases {
		before := TokenValidity(kb, base)
		for _, add := range additions {
			extended := append(append([]string{}, base...), add)
			after := TokenValidity(kb, extended)
			assert.GreaterOrEqual(t, after, before,
				"adding %q to %v must not lower validity", add, base)
		}
	}
}

func TestTokenValidityStopWordsDoNotInflate(t *testing.T) {
	kb := knowledge.NewStore()

	// Short connectives must contribute zero, not fuzzy-match their way to a
	// two-letter brand.
	assert.InDelta(t, 30, TokenValidity(kb, []string{"klocki", "do", "pizzy"}), 0.01)
}
