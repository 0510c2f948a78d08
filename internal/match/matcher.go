// Package match scores free-text queries against the catalog snapshot and
// produces ranked match candidates.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/partsense/partsense/internal/knowledge"
	"github.com/partsense/partsense/internal/model"
)

// Score thresholds and weights for per-token comparison.
const (
	exactScore       = 100.0
	prefixScore      = 95.0
	suffixScore      = 90.0
	similarityStrong = 85 // above this, similarity counts almost fully
	similarityWeak   = 75 // above this, similarity counts with a haircut
	acceptThreshold  = 35.0
)

// Matcher evaluates queries against every catalog item. It precomputes the
// per-item search text once, so a Matcher is tied to one catalog snapshot
// and is safe for concurrent use.
type Matcher struct {
	store *knowledge.Store
	items []model.CatalogItem
	// search tokens per item: name+brand+model+category, lowercased.
	// Price, stock and ID are metadata and deliberately excluded so that
	// numeric query tokens can never match an inventory count.
	tokens [][]string
}

// New creates a matcher over the given catalog snapshot.
func New(store *knowledge.Store, items []model.CatalogItem) *Matcher {
	m := &Matcher{
		store:  store,
		items:  items,
		tokens: make([][]string, len(items)),
	}
	for i, item := range items {
		text := strings.ToLower(item.Name + " " + item.Brand + " " + item.Model + " " + item.Category)
		m.tokens[i] = knowledge.Tokenize(text)
	}
	return m
}

// Match scores every catalog item against the query and returns accepted
// candidates sorted by descending score. Ties keep catalog order (stable
// sort). vehicleFilter restricts items to one vehicle type; universal parts
// always pass.
func (m *Matcher) Match(query string, queryTokens []string, vehicleFilter string) []model.MatchCandidate {
	tokens := m.searchableTokens(queryTokens)
	if len(tokens) == 0 {
		return nil
	}

	// Short numeric tokens only participate when a non-numeric token gives
	// them context; a bare "89" matching some part dimension is noise.
	hasWordContext := false
	for _, tok := range tokens {
		if !isDigits(tok) && len(tok) > 1 {
			hasWordContext = true
			break
		}
	}

	var candidates []model.MatchCandidate

	for i, item := range m.items {
		if vehicleFilter != "" && item.Vehicle != vehicleFilter && item.Vehicle != model.VehicleUniversal {
			continue
		}

		score, ok := m.scoreItem(query, tokens, m.tokens[i], item, hasWordContext)
		if !ok || score < acceptThreshold {
			continue
		}
		candidates = append(candidates, model.MatchCandidate{
			Item:  item,
			Score: int(math.Round(math.Min(score, 100))),
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})
	return candidates
}

// scoreItem computes the aggregate match score for one item. The boolean is
// false when no query token matched at all.
func (m *Matcher) scoreItem(query string, queryTokens, itemTokens []string, item model.CatalogItem, hasWordContext bool) (float64, bool) {
	tokenScores := make([]float64, 0, len(queryTokens))

	for _, q := range queryTokens {
		if isDigits(q) && len(q) <= 3 && !hasWordContext {
			continue
		}
		tokenScores = append(tokenScores, bestTokenScore(q, itemTokens))
	}

	if len(tokenScores) == 0 {
		return 0, false
	}
	allZero := true
	sum := 0.0
	for _, s := range tokenScores {
		sum += s
		if s > 0 {
			allZero = false
		}
	}
	if allZero {
		return 0, false
	}

	base := sum / float64(len(tokenScores))

	// Precision multiplier: reward queries whose every token found a home,
	// penalize queries dragging a dead token along.
	if len(queryTokens) > 1 {
		switch {
		case allAbove(tokenScores, 70):
			base *= 1.3
		case allAbove(tokenScores, 60):
			base *= 1.2
		case allAbove(tokenScores, 50):
			base *= 1.1
		case anyBelow(tokenScores, 20):
			base *= 0.8
		}
	}

	base += contextBonus(query, queryTokens, item)

	return base, true
}

// bestTokenScore finds the best comparison score of one query token against
// all item tokens.
func bestTokenScore(q string, itemTokens []string) float64 {
	best := 0.0
	for _, p := range itemTokens {
		// Never match a short number to another bare number; part
		// dimensions and pack counts collide too easily.
		if isDigits(q) && isDigits(p) && len(q) <= 3 {
			continue
		}

		switch {
		case q == p:
			return exactScore
		case len(q) >= 2 && strings.HasPrefix(p, q):
			ratio := float64(len(q)) / float64(len(p))
			best = math.Max(best, prefixScore*ratio)
		case len(p) >= 2 && strings.HasPrefix(q, p):
			ratio := float64(len(p)) / float64(len(q))
			best = math.Max(best, suffixScore*ratio)
		default:
			sim := knowledge.Similarity(q, p)
			if sim > similarityStrong {
				best = math.Max(best, float64(sim)*0.95)
			} else if sim > similarityWeak {
				best = math.Max(best, float64(sim)*0.85)
			}
		}
	}
	return best
}

// contextBonus adds flat bonuses for whole-field containment of brand,
// model and category.
func contextBonus(query string, queryTokens []string, item model.CatalogItem) float64 {
	bonus := 0.0

	brand := strings.ToLower(item.Brand)
	if brand != "" && (strings.Contains(query, brand) || strings.Contains(brand, query)) {
		bonus += 15
	}

	itemModel := strings.ToLower(item.Model)
	for _, q := range queryTokens {
		if len(q) > 2 && strings.Contains(itemModel, q) {
			bonus += 10
			break
		}
	}

	category := strings.ToLower(item.Category)
	for _, q := range queryTokens {
		if strings.Contains(category, q) {
			bonus += 10
			break
		}
	}

	return bonus
}

// searchableTokens drops stop words and conversational connectives from the
// query before scoring; "szukam klocki do bmw" should score exactly like
// "klocki bmw".
func (m *Matcher) searchableTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if m.store.ContainsAny(tok, knowledge.SetStopWords, knowledge.SetConnectives) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func allAbove(scores []float64, threshold float64) bool {
	for _, s := range scores {
		if s <= threshold {
			return false
		}
	}
	return true
}

func anyBelow(scores []float64, threshold float64) bool {
	for _, s := range scores {
		if s < threshold {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
