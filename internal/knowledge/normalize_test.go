package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "lowercases", query: "Klocki BMW", want: "klocki bmw"},
		{name: "trims and collapses whitespace", query: "  filtr   mann  ", want: "filtr mann"},
		{name: "keeps diacritics", query: "ŁOŻYSKO 6205", want: "łożysko 6205"},
		{name: "empty", query: "", want: ""},
		{name: "whitespace only", query: "   \t  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.query))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	queries := []string{"Klocki  BMW E90", "  FILTR Mann HU719/7x ", "świeca NGK"}
	for _, q := range queries {
		once := Normalize(q)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "plain words", query: "klocki bmw e90", want: []string{"klocki", "bmw", "e90"}},
		{name: "symbols split tokens", query: "hu719/7x", want: []string{"hu719", "7x"}},
		{name: "punctuation is a separator", query: "filtr, mann!!", want: []string{"filtr", "mann"}},
		{name: "diacritics survive", query: "łożysko świeca", want: []string{"łożysko", "świeca"}},
		{name: "empty", query: "", want: nil},
		{name: "symbols only", query: "!!! --- ///", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize(t *testing.T) {
	store := NewStore()

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "typo corrections",
			tokens: []string{"kloki", "bosh"},
			want:   []string{"klocki", "bosch"},
		},
		{
			name:   "brand shorthand expands",
			tokens: []string{"vw", "golf"},
			want:   []string{"volkswagen", "golf"},
		},
		{
			name:   "plural folds onto catalog form",
			tokens: []string{"filtry", "mann"},
			want:   []string{"filtr", "mann"},
		},
		{
			name:   "canonical tokens pass through",
			tokens: []string{"klocki", "bmw", "e90"},
			want:   []string{"klocki", "bmw", "e90"},
		},
		{
			name:   "empty input",
			tokens: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.Canonicalize(tt.tokens))
		})
	}
}

func TestTokensForPipeline(t *testing.T) {
	store := NewStore()
	assert.Equal(t,
		[]string{"klocki", "bosch", "e90"},
		store.TokensFor("  Kloki BOSH e90!! "))
}
