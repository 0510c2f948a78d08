package engine

import "github.com/partsense/partsense/internal/knowledge"

// Per-token validity scores, one tier per dictionary. A brand is the
// strongest possible signal of purchase intent; a general-language word the
// weakest one that still counts.
const (
	validityBrand      = 100
	validityLuxury     = 95
	validityCategory   = 90
	validityCarModel   = 85
	validityMotorcycle = 80
	validityCommon     = 70
	validityCode       = 60
	validityGeneral    = 50
)

// TokenValidity scores how domain-plausible a token list is, 0-100. Each
// token gets the score of the best dictionary tier it hits, falling back to
// edit-distance proximity for unrecognized tokens; the result is the mean.
func TokenValidity(kb *knowledge.Store, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	total := 0
	for _, tok := range tokens {
		total += tokenValidity(kb, tok)
	}
	return float64(total) / float64(len(tokens))
}

func tokenValidity(kb *knowledge.Store, tok string) int {
	switch {
	case kb.Contains(knowledge.SetBrands, tok):
		return validityBrand
	case kb.Contains(knowledge.SetLuxuryBrands, tok):
		return validityLuxury
	case kb.Contains(knowledge.SetCategories, tok):
		return validityCategory
	case kb.Contains(knowledge.SetCarModels, tok):
		return validityCarModel
	case kb.Contains(knowledge.SetMotorcycleTerms, tok):
		return validityMotorcycle
	case kb.Contains(knowledge.SetCommonTerms, tok):
		return validityCommon
	case kb.MatchesCodePattern(tok):
		return validityCode
	case kb.Contains(knowledge.SetGeneralWords, tok):
		return validityGeneral
	}
	return proximityValidity(kb, tok)
}

// proximityValidity scores an unrecognized token by its edit distance to the
// dictionaries, the high-signal sets first. A near-miss on a brand is likely
// a typo worth keeping; a distance-three resemblance to a general word is
// barely above noise.
func proximityValidity(kb *knowledge.Store, tok string) int {
	type tier struct {
		set   knowledge.Set
		score [3]int // score at distance 1, 2, 3
	}
	tiers := []tier{
		{knowledge.SetBrands, [3]int{85, 70, 30}},
		{knowledge.SetLuxuryBrands, [3]int{85, 70, 30}},
		{knowledge.SetCategories, [3]int{75, 60, 30}},
		{knowledge.SetCarModels, [3]int{60, 40, 20}},
		{knowledge.SetCommonTerms, [3]int{60, 40, 20}},
		{knowledge.SetGeneralWords, [3]int{60, 40, 20}},
	}

	best := 0
	bestDist := 4
	for _, t := range tiers {
		if _, d, ok := kb.Closest(t.set, tok, 3); ok && d > 0 && d < bestDist {
			bestDist = d
			best = t.score[d-1]
		}
	}
	return best
}
