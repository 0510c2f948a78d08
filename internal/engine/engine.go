// Package engine implements the query classification pipeline: token
// validity scoring, the nonsense and structural filters, fuzzy catalog
// matching and the ordered rule chain that turns those signals into a
// confidence level with a reason code.
package engine

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/partsense/partsense/internal/knowledge"
	"github.com/partsense/partsense/internal/match"
	"github.com/partsense/partsense/internal/model"
)

// maxMatches caps how many candidates an analysis carries. Downstream only
// ever renders a handful of suggestions.
const maxMatches = 6

// Engine classifies shopping queries against one catalog snapshot. It is
// safe for concurrent use; all mutable state lives behind the cache mutex.
type Engine struct {
	kb      *knowledge.Store
	matcher *match.Matcher
	items   []model.CatalogItem
	logger  *slog.Logger

	mu    sync.RWMutex
	cache map[string]model.QueryAnalysis
}

// New creates an engine over the given knowledge store and catalog snapshot.
func New(kb *knowledge.Store, items []model.CatalogItem, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		kb:      kb,
		matcher: match.New(kb, items),
		items:   items,
		logger:  logger,
		cache:   make(map[string]model.QueryAnalysis),
	}
}

// Classify analyzes one query, optionally restricted to a vehicle type.
// Results are memoized per normalized query and filter, so repeated queries
// are free; two calls with the same input always return the same analysis.
func (e *Engine) Classify(query, vehicleFilter string) model.QueryAnalysis {
	normalized := knowledge.Normalize(query)
	key := normalized + "|" + vehicleFilter

	e.mu.RLock()
	cached, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		// Raw spellings of the same normalized query share one cache entry;
		// the Query field must still echo what this caller typed, because
		// that string is what gets recorded as lost demand.
		cached.Query = query
		return cached
	}

	analysis := e.classify(query, normalized, vehicleFilter)

	e.mu.Lock()
	e.cache[key] = analysis
	e.mu.Unlock()

	return analysis
}

func (e *Engine) classify(query, normalized, vehicleFilter string) model.QueryAnalysis {
	tokens := e.kb.Canonicalize(knowledge.Tokenize(normalized))
	if len(tokens) == 0 {
		return model.QueryAnalysis{
			Query:      query,
			Confidence: model.ConfidenceLow,
			Suggestion: model.SuggestionNonsensical,
			IsNonsense: true,
		}
	}

	// The matcher sees the canonical form of the query, so a corrected typo
	// still earns the whole-field brand and model bonuses.
	matches := e.matcher.Match(strings.Join(tokens, " "), tokens, vehicleFilter)
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	bestScore := 0
	if len(matches) > 0 {
		bestScore = matches[0].Score
	}

	codes, shortCodes := e.codeTokens(tokens)

	s := signals{
		tokens:     tokens,
		validity:   TokenValidity(e.kb, tokens),
		bestScore:  bestScore,
		nonsense:   IsNonsense(e.kb, tokens),
		structural: IsStructural(e.kb, tokens),
		luxury:     e.hasLuxuryBrand(tokens),
		hasCode:    len(codes) > 0,
	}
	s.hasShortCode = len(shortCodes) > 0
	s.codeMissing = s.hasCode && !e.anyCodeInCatalog(codes)
	s.shortCodeMissing = s.hasShortCode && len(tokens) >= 2 &&
		e.hasKnownContext(tokens) && !e.anyCodeInCatalog(shortCodes)

	r := decide(s)

	e.logger.Debug("query classified",
		"query", normalized,
		"rule", r.name,
		"confidence", r.confidence,
		"validity", s.validity,
		"best_score", s.bestScore,
		"matches", len(matches))

	return model.QueryAnalysis{
		Query:          query,
		Tokens:         tokens,
		TokenValidity:  s.validity,
		BestMatchScore: bestScore,
		Confidence:     r.confidence,
		Suggestion:     r.suggestion,
		HasLuxuryBrand: s.luxury,
		HasProductCode: s.hasCode,
		IsStructural:   s.structural,
		IsNonsense:     s.nonsense,
		Matches:        matches,
	}
}

// codeTokens splits code-shaped tokens into full product codes and short
// codes that need surrounding context to count.
func (e *Engine) codeTokens(tokens []string) (codes, shortCodes []string) {
	for _, tok := range tokens {
		switch {
		case e.kb.LooksLikeProductCode(tok):
			codes = append(codes, tok)
		case e.kb.IsShortCode(tok):
			shortCodes = append(shortCodes, tok)
		}
	}
	return codes, shortCodes
}

// anyCodeInCatalog reports whether any code appears somewhere in the catalog:
// in a part number, an item ID or the item name.
func (e *Engine) anyCodeInCatalog(codes []string) bool {
	for _, code := range codes {
		upper := strings.ToUpper(code)
		for _, item := range e.items {
			if strings.Contains(strings.ToUpper(item.Model), upper) ||
				strings.Contains(strings.ToUpper(item.ID), upper) ||
				strings.Contains(strings.ToUpper(item.Name), upper) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) hasLuxuryBrand(tokens []string) bool {
	for _, tok := range tokens {
		if e.kb.Contains(knowledge.SetLuxuryBrands, tok) {
			return true
		}
	}
	return false
}

// hasKnownContext reports whether some token anchors the query in the
// domain: a brand, a category or a vehicle model.
func (e *Engine) hasKnownContext(tokens []string) bool {
	for _, tok := range tokens {
		if e.kb.ContainsAny(tok,
			knowledge.SetBrands, knowledge.SetLuxuryBrands,
			knowledge.SetCategories, knowledge.SetCarModels,
			knowledge.SetMotorcycleTerms) {
			return true
		}
	}
	return false
}

// ExtractIntent reduces a token list to its domain essence, the part and
// vehicle words only. Used as the "what were they looking for" field of
// lost-demand records. Falls back to the full token list when nothing is
// recognized.
func ExtractIntent(kb *knowledge.Store, tokens []string) string {
	essential := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if kb.ContainsAny(tok,
			knowledge.SetCategories, knowledge.SetBrands, knowledge.SetLuxuryBrands,
			knowledge.SetCarModels, knowledge.SetMotorcycleTerms) ||
			kb.MatchesCodePattern(tok) {
			essential = append(essential, tok)
		}
	}
	if len(essential) == 0 {
		essential = tokens
	}
	return strings.Join(essential, " ")
}
