package engine

import "github.com/partsense/partsense/internal/knowledge"

// IsNonsense reports whether a token list is noise rather than a real product
// query. Recognized domain vocabulary protects a query from every surface
// heuristic below; the single exception is a food word, which makes a parts
// query absurd no matter what else it contains.
func IsNonsense(kb *knowledge.Store, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	allConnective := true
	for _, tok := range tokens {
		if !kb.ContainsAny(tok, knowledge.SetStopWords, knowledge.SetConnectives) {
			allConnective = false
			break
		}
	}
	if allConnective {
		return true
	}

	for _, tok := range tokens {
		if kb.Contains(knowledge.SetFoodWords, tok) {
			return true
		}
	}

	// Domain context bypass: an exact or near-miss hit on the high-signal
	// dictionaries, or a code-shaped token, means someone is really asking
	// about a part, however mangled the rest of the query is.
	for _, tok := range tokens {
		if kb.ContainsAny(tok,
			knowledge.SetBrands, knowledge.SetLuxuryBrands, knowledge.SetCategories,
			knowledge.SetCarModels, knowledge.SetMotorcycleTerms) {
			return false
		}
		if kb.LooksLikeProductCode(tok) {
			return false
		}
		for _, set := range []knowledge.Set{knowledge.SetBrands, knowledge.SetLuxuryBrands, knowledge.SetCategories} {
			if _, _, ok := kb.Closest(set, tok, 2); ok {
				return false
			}
		}
	}

	for i, tok := range tokens {
		if kb.HasKeyboardRun(tok) {
			return true
		}
		// Mash split by an accidental space still reads as one run.
		if i+1 < len(tokens) && kb.HasKeyboardRun(tok+tokens[i+1]) {
			return true
		}
		if kb.HasGibberish(tok) {
			return true
		}
		if looksMashed(tok) {
			return true
		}
		if kb.Contains(knowledge.SetFillerWords, tok) {
			return true
		}
	}

	return false
}

// looksMashed applies per-token surface heuristics: too few distinct
// characters, no vowel at all, or a short sequence typed in a loop.
func looksMashed(tok string) bool {
	runes := []rune(tok)
	if len(runes) > 3 {
		if distinctRunes(runes) <= 3 {
			return true
		}
		if !hasVowel(runes) {
			return true
		}
	}
	return isRepeatedSequence(runes)
}

func distinctRunes(runes []rune) int {
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		seen[r] = true
	}
	return len(seen)
}

func hasVowel(runes []rune) bool {
	for _, r := range runes {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y', 'ą', 'ę', 'ó':
			return true
		}
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// isRepeatedSequence detects tokens built by repeating a block two or more
// characters long, like "abcabcabc".
func isRepeatedSequence(runes []rune) bool {
	n := len(runes)
	if n < 6 {
		return false
	}
	for size := 2; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		repeated := true
		for i := size; i < n; i++ {
			if runes[i] != runes[i%size] {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}
