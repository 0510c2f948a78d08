// Package knowledge holds the static domain vocabulary the classifier scores
// queries against: brand, category, model and technical term dictionaries,
// product-code patterns, typo canonicalization and the nonsense word lists.
//
// A Store is built once at startup and is strictly read-only afterwards, so
// it is safe to share across concurrent classification calls.
package knowledge

import (
	"regexp"
	"strings"
	"unicode"
)

// Set names a dictionary inside the store.
type Set string

// Dictionary set names.
const (
	SetBrands          Set = "brands"
	SetLuxuryBrands    Set = "luxury_brands"
	SetCategories      Set = "categories"
	SetCarModels       Set = "car_models"
	SetMotorcycleTerms Set = "motorcycle_terms"
	SetCommonTerms     Set = "common_terms"
	SetGeneralWords    Set = "general_words"
	SetStopWords       Set = "stop_words"
	SetConnectives     Set = "connectives"
	SetFoodWords       Set = "food_words"
	SetFillerWords     Set = "filler_words"
)

// Store is the immutable domain knowledge snapshot.
type Store struct {
	sets         map[Set]map[string]bool
	typos        map[string]string
	plurals      map[string]string
	codePatterns []*regexp.Regexp
	keyboardRuns []string
	gibberish    []string
}

// NewStore builds a store from the compiled-in default dictionaries.
func NewStore() *Store {
	patterns := make([]*regexp.Regexp, 0, len(defaultCodePatterns))
	for _, p := range defaultCodePatterns {
		patterns = append(patterns, regexp.MustCompile(p))
	}

	return &Store{
		sets: map[Set]map[string]bool{
			SetBrands:          defaultBrands,
			SetLuxuryBrands:    defaultLuxuryBrands,
			SetCategories:      defaultCategories,
			SetCarModels:       defaultCarModels,
			SetMotorcycleTerms: defaultMotorcycleTerms,
			SetCommonTerms:     defaultCommonTerms,
			SetGeneralWords:    defaultGeneralWords,
			SetStopWords:       defaultStopWords,
			SetConnectives:     defaultConnectives,
			SetFoodWords:       defaultFoodWords,
			SetFillerWords:     defaultFillerWords,
		},
		typos:        defaultTypoCorrections,
		plurals:      defaultPluralFold,
		codePatterns: patterns,
		keyboardRuns: defaultKeyboardRuns,
		gibberish:    defaultGibberish,
	}
}

// Contains reports whether token is an exact member of the named set.
func (s *Store) Contains(set Set, token string) bool {
	return s.sets[set][token]
}

// ContainsAny reports whether token is a member of any of the named sets.
func (s *Store) ContainsAny(token string, sets ...Set) bool {
	for _, set := range sets {
		if s.sets[set][token] {
			return true
		}
	}
	return false
}

// Closest finds the dictionary entry in the named set with the smallest edit
// distance to token, bounded by maxDistance. Tokens shorter than three runes
// or containing digits are never matched; nearly everything is within two
// edits of some two-letter entry, which makes short-token fallback pure
// noise.
func (s *Store) Closest(set Set, token string, maxDistance int) (string, int, bool) {
	if len([]rune(token)) < 3 || containsDigit(token) {
		return "", 0, false
	}

	best := ""
	bestDist := maxDistance + 1
	tokenLen := len([]rune(token))

	for word := range s.sets[set] {
		wordLen := len([]rune(word))
		diff := tokenLen - wordLen
		if diff < 0 {
			diff = -diff
		}
		if diff >= bestDist {
			continue
		}
		if d := Levenshtein(token, word); d < bestDist {
			best = word
			bestDist = d
			if d == 0 {
				break
			}
		}
	}

	if bestDist > maxDistance {
		return "", 0, false
	}
	return best, bestDist, true
}

// MatchesCodePattern reports whether token looks like a vehicle model code
// or part number (E90, 320i, A4).
func (s *Store) MatchesCodePattern(token string) bool {
	for _, re := range s.codePatterns {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// LooksLikeProductCode reports whether token is code-shaped enough to check
// against the catalog: a letter-digit part number of at least three
// characters, or a long digit run. Round trade numbers are excluded.
func (s *Store) LooksLikeProductCode(token string) bool {
	switch token {
	case "100", "200", "300":
		return false
	}
	runes := []rune(token)
	if len(runes) >= 4 && allDigits(token) {
		return true
	}
	return len(runes) >= 3 && containsDigit(token) && containsLetter(token)
}

// IsShortCode reports whether token is a short alphanumeric code (1-3
// characters) that only counts as a code when a brand or category gives it
// context.
func (s *Store) IsShortCode(token string) bool {
	runes := []rune(token)
	if len(runes) == 0 || len(runes) > 3 {
		return false
	}
	if s.LooksLikeProductCode(token) {
		return false
	}
	return allDigits(token) || (isAlnum(token) && containsDigit(token))
}

// HasKeyboardRun reports whether token contains an adjacent-key sequence.
func (s *Store) HasKeyboardRun(token string) bool {
	for _, run := range s.keyboardRuns {
		if strings.Contains(token, run) {
			return true
		}
	}
	return false
}

// HasGibberish reports whether token contains an n-gram from the gibberish
// list.
func (s *Store) HasGibberish(token string) bool {
	for _, g := range s.gibberish {
		if strings.Contains(token, g) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
