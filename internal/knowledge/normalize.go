package knowledge

import (
	"strings"
	"unicode"
)

// Normalize lowercases a raw query and collapses runs of whitespace. It is
// idempotent: Normalize(Normalize(q)) == Normalize(q).
func Normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Tokenize splits a normalized query into tokens. Any run of characters that
// is neither letter nor digit acts as a separator, so malformed input can
// never panic the tokenizer; it just produces fewer tokens.
func Tokenize(query string) []string {
	return strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Canonicalize applies the typo-correction and plural-folding dictionaries
// to each token. This is the single canonicalization pass: every scoring
// component sees canonical tokens only.
func (s *Store) Canonicalize(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if fixed, ok := s.typos[tok]; ok {
			tok = fixed
		}
		if folded, ok := s.plurals[tok]; ok {
			tok = folded
		}
		out[i] = tok
	}
	return out
}

// TokensFor runs the full normalization pipeline on a raw query.
func (s *Store) TokensFor(query string) []string {
	return s.Canonicalize(Tokenize(Normalize(query)))
}
