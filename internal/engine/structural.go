package engine

import (
	"unicode"

	"github.com/partsense/partsense/internal/knowledge"
)

// IsStructural reports whether the query names a known part category next to
// a plausible but unrecognized word, i.e. "klocki do hondurasa": the shape of
// a real request for a vehicle the catalog does not know. Structural queries
// are lost demand, not noise.
func IsStructural(kb *knowledge.Store, tokens []string) bool {
	hasCategory := false
	for _, tok := range tokens {
		if kb.Contains(knowledge.SetCategories, tok) {
			hasCategory = true
			break
		}
	}
	if !hasCategory {
		return false
	}

	for _, tok := range tokens {
		if isPlausibleUnknown(kb, tok) {
			return true
		}
	}
	return false
}

// isPlausibleUnknown reports whether a token looks like a real word that no
// dictionary recognizes. Codes, connectives and keyboard mash never qualify.
func isPlausibleUnknown(kb *knowledge.Store, tok string) bool {
	if kb.ContainsAny(tok,
		knowledge.SetBrands, knowledge.SetLuxuryBrands, knowledge.SetCategories,
		knowledge.SetCarModels, knowledge.SetMotorcycleTerms, knowledge.SetCommonTerms,
		knowledge.SetGeneralWords, knowledge.SetStopWords, knowledge.SetConnectives) {
		return false
	}
	if kb.MatchesCodePattern(tok) || kb.LooksLikeProductCode(tok) || kb.IsShortCode(tok) {
		return false
	}

	runes := []rune(tok)
	if len(runes) < 3 || len(runes) > 15 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return !kb.HasKeyboardRun(tok) && !kb.HasGibberish(tok)
}
