package model

// ConfidenceLevel is the four-valued classification outcome that drives
// downstream UI and analytics behavior.
type ConfidenceLevel string

// Confidence level constants.
const (
	ConfidenceHigh    ConfidenceLevel = "HIGH"
	ConfidenceMedium  ConfidenceLevel = "MEDIUM"
	ConfidenceLow     ConfidenceLevel = "LOW"
	ConfidenceNoMatch ConfidenceLevel = "NO_MATCH"
)

// SuggestionType is the reason code identifying which classification rule
// produced the confidence level.
type SuggestionType string

// Suggestion type constants, one per terminal classification rule.
const (
	SuggestionExactMatch         SuggestionType = "exact_match"
	SuggestionStructuralMissing  SuggestionType = "structural_missing"
	SuggestionProductCodeMissing SuggestionType = "product_code_missing"
	SuggestionCodeFound          SuggestionType = "code_found"
	SuggestionLuxuryBrandMissing SuggestionType = "luxury_brand_missing"
	SuggestionGoodMatch          SuggestionType = "good_match"
	SuggestionTypoCorrection     SuggestionType = "typo_correction"
	SuggestionModelMissing       SuggestionType = "model_missing"
	SuggestionProductMissing     SuggestionType = "product_missing"
	SuggestionUnknownBrand       SuggestionType = "unknown_brand"
	SuggestionNonsensical        SuggestionType = "nonsensical"
)

// MatchCandidate pairs a catalog item with its fuzzy match score (0-100).
type MatchCandidate struct {
	Item  CatalogItem `json:"item"`
	Score int         `json:"score"`
}

// QueryAnalysis is the engine's output contract: the complete classification
// of one query. It is immutable once constructed and is the sole unit
// exchanged with external collaborators.
type QueryAnalysis struct {
	Query          string           `json:"query"`
	Tokens         []string         `json:"tokens"`
	TokenValidity  float64          `json:"token_validity"`
	BestMatchScore int              `json:"best_match_score"`
	Confidence     ConfidenceLevel  `json:"confidence"`
	Suggestion     SuggestionType   `json:"suggestion"`
	HasLuxuryBrand bool             `json:"has_luxury_brand"`
	HasProductCode bool             `json:"has_product_code"`
	IsStructural   bool             `json:"is_structural"`
	IsNonsense     bool             `json:"is_nonsense"`
	Matches        []MatchCandidate `json:"matches,omitempty"`
}
