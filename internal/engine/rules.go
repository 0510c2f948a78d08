package engine

import "github.com/partsense/partsense/internal/model"

// Classification thresholds referenced by the rule chain.
const (
	exactMatchScore      = 90
	goodMatchScore       = 80
	typoMatchScore       = 70
	codeMatchScore       = 40
	luxuryMatchScore     = 60
	typoValidity         = 50
	modelMissingValidity = 70
	codeMissingValidity  = 40
	shortCodeValidity    = 70
	productValidity      = 35
	brandValidity        = 20
)

// signals is everything the rule chain is allowed to look at. Every field is
// computed up front so that rule evaluation itself is a pure, ordered scan.
type signals struct {
	tokens           []string
	validity         float64
	bestScore        int
	nonsense         bool
	structural       bool
	luxury           bool
	hasCode          bool
	hasShortCode     bool
	codeMissing      bool
	shortCodeMissing bool
}

type rule struct {
	name       string
	applies    func(signals) bool
	confidence model.ConfidenceLevel
	suggestion model.SuggestionType
}

// ruleChain is evaluated top to bottom; the first rule that applies wins.
// Order is load-bearing: nonsense must beat a lucky fuzzy match, a very
// strong match must beat the structural and code checks, and the luxury
// check must run before the generic good-match rule so that "klocki ferrari"
// becomes lost demand instead of a weak suggestion.
var ruleChain = []rule{
	{
		name:       "nonsense",
		applies:    func(s signals) bool { return s.nonsense },
		confidence: model.ConfidenceLow,
		suggestion: model.SuggestionNonsensical,
	},
	{
		name:       "exact_match",
		applies:    func(s signals) bool { return s.bestScore >= exactMatchScore },
		confidence: model.ConfidenceHigh,
		suggestion: model.SuggestionExactMatch,
	},
	{
		name:       "structural_missing",
		applies:    func(s signals) bool { return s.structural },
		confidence: model.ConfidenceNoMatch,
		suggestion: model.SuggestionStructuralMissing,
	},
	{
		name: "product_code_missing",
		applies: func(s signals) bool {
			return (s.codeMissing && s.validity >= codeMissingValidity) ||
				(s.shortCodeMissing && s.validity >= shortCodeValidity)
		},
		confidence: model.ConfidenceNoMatch,
		suggestion: model.SuggestionProductCodeMissing,
	},
	{
		name:       "code_found",
		applies:    func(s signals) bool { return s.hasCode && s.bestScore >= codeMatchScore },
		confidence: model.ConfidenceMedium,
		suggestion: model.SuggestionCodeFound,
	},
	{
		name:       "luxury_brand_missing",
		applies:    func(s signals) bool { return s.luxury && s.bestScore < luxuryMatchScore },
		confidence: model.ConfidenceNoMatch,
		suggestion: model.SuggestionLuxuryBrandMissing,
	},
	{
		name:       "good_match",
		applies:    func(s signals) bool { return s.bestScore >= goodMatchScore },
		confidence: model.ConfidenceHigh,
		suggestion: model.SuggestionGoodMatch,
	},
	{
		name: "typo_correction",
		applies: func(s signals) bool {
			return s.bestScore >= typoMatchScore && s.validity >= typoValidity
		},
		confidence: model.ConfidenceMedium,
		suggestion: model.SuggestionTypoCorrection,
	},
	{
		name: "model_missing",
		applies: func(s signals) bool {
			return len(s.tokens) >= 2 && s.validity >= modelMissingValidity &&
				s.bestScore < typoMatchScore && !s.hasCode && !s.hasShortCode
		},
		confidence: model.ConfidenceNoMatch,
		suggestion: model.SuggestionModelMissing,
	},
	{
		name:       "product_missing",
		applies:    func(s signals) bool { return s.validity >= productValidity },
		confidence: model.ConfidenceNoMatch,
		suggestion: model.SuggestionProductMissing,
	},
	{
		name:       "unknown_brand",
		applies:    func(s signals) bool { return s.validity >= brandValidity },
		confidence: model.ConfidenceNoMatch,
		suggestion: model.SuggestionUnknownBrand,
	},
	{
		name:       "fallback",
		applies:    func(signals) bool { return true },
		confidence: model.ConfidenceLow,
		suggestion: model.SuggestionNonsensical,
	},
}

// decide runs the rule chain and returns the winning rule.
func decide(s signals) rule {
	for _, r := range ruleChain {
		if r.applies(s) {
			return r
		}
	}
	// Unreachable: the fallback rule always applies.
	return ruleChain[len(ruleChain)-1]
}
