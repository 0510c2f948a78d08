package engine

import (
	"testing"

	"github.com/partsense/partsense/internal/knowledge"
	"github.com/stretchr/testify/assert"
)

func TestIsNonsense(t *testing.T) {
	kb := knowledge.NewStore()

	tests := []struct {
		name   string
		tokens []string
		want   bool
	}{
		{name: "empty", tokens: nil, want: true},
		{name: "stop words only", tokens: []string{"do", "na"}, want: true},
		{name: "connectives only", tokens: []string{"szukam", "czegoś"}, want: true},
		{name: "keyboard mash", tokens: []string{"asdasdasd"}, want: true},
		{name: "keyboard run", tokens: []string{"xcvbnm"}, want: true},
		{name: "mash split by a space", tokens: []string{"qw", "erty"}, want: true},
		{name: "single repeated letter", tokens: []string{"aaaa"}, want: true},
		{name: "no vowels", tokens: []string{"brfgst"}, want: true},
		{name: "repeated block", tokens: []string{"tokurtokurtokur"}, want: true},
		{name: "greeting filler", tokens: []string{"witam"}, want: true},
		{name: "food word beats category", tokens: []string{"klocki", "do", "pizzy"}, want: true},
		{name: "category protects", tokens: []string{"klocki"}, want: false},
		{name: "brand protects", tokens: []string{"bosch"}, want: false},
		{name: "near-miss category protects", tokens: []string{"kloczki"}, want: false},
		{name: "product code protects", tokens: []string{"f026407022"}, want: false},
		{name: "real query", tokens: []string{"klocki", "bmw", "e90"}, want: false},
		{name: "plain unknown word is not noise", tokens: []string{"klocki", "hondurasa"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonsense(kb, tt.tokens))
		})
	}
}

func TestIsRepeatedSequence(t *testing.T) {
	assert.True(t, isRepeatedSequence([]rune("abcabc")))
	assert.True(t, isRepeatedSequence([]rune("xyxyxy")))
	assert.False(t, isRepeatedSequence([]rune("abcab")))
	assert.False(t, isRepeatedSequence([]rune("klocki")))
}
