package cli

import (
	"fmt"
	"strings"

	"github.com/partsense/partsense/internal/model"
)

// suggestionMessages are the operator-facing explanations, one per reason
// code.
var suggestionMessages = map[model.SuggestionType]string{
	model.SuggestionExactMatch:         "Exact catalog match.",
	model.SuggestionStructuralMissing:  "Looks like a real request for a vehicle we do not stock.",
	model.SuggestionProductCodeMissing: "Valid query with a part number the catalog lacks.",
	model.SuggestionCodeFound:          "Part number recognized; closest catalog items listed.",
	model.SuggestionLuxuryBrandMissing: "Luxury brand we do not carry.",
	model.SuggestionGoodMatch:          "Strong catalog match.",
	model.SuggestionTypoCorrection:     "Probable typo; showing the closest items.",
	model.SuggestionModelMissing:       "Valid product words, but no vehicle or model to pin them to.",
	model.SuggestionProductMissing:     "Plausible product the catalog does not have.",
	model.SuggestionUnknownBrand:       "Possibly a brand we do not know.",
	model.SuggestionNonsensical:        "Query does not look like a product search.",
}

// RenderAnalysis renders one classification for the terminal.
func RenderAnalysis(a model.QueryAnalysis) string {
	var b strings.Builder

	b.WriteString(FormatTitle(fmt.Sprintf("Query: %s", a.Query)))
	b.WriteString("\n")

	badge := ConfidenceStyle(a.Confidence).Render(string(a.Confidence))
	b.WriteString(fmt.Sprintf("%s  %s\n", badge, suggestionMessage(a.Suggestion)))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf(
		"validity %.0f  best score %d  tokens %s",
		a.TokenValidity, a.BestMatchScore, strings.Join(a.Tokens, " "))))
	b.WriteString("\n")

	if len(a.Matches) > 0 {
		b.WriteString("\n")
		b.WriteString(TableHeaderStyle.Render("Matches"))
		b.WriteString("\n")
		for _, c := range a.Matches {
			b.WriteString(fmt.Sprintf("  %3d  %-50s %8.2f zł  stock %d\n",
				c.Score, c.Item.Name, c.Item.Price, c.Item.Stock))
		}
	}

	return b.String()
}

// RenderDemandSummaries renders the lost-demand report.
func RenderDemandSummaries(summaries []model.DemandSummary) string {
	if len(summaries) == 0 {
		return SubtleStyle.Render("No lost demand recorded.") + "\n"
	}

	var b strings.Builder
	b.WriteString(FormatTitle("Lost demand"))
	b.WriteString("\n")
	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("  %4d  %-40s %s\n",
			s.Count, s.Intent, SubtleStyle.Render(s.LastSeen.Format("2006-01-02"))))
	}
	return b.String()
}

// RenderCatalog renders catalog items as a listing.
func RenderCatalog(items []model.CatalogItem) string {
	if len(items) == 0 {
		return SubtleStyle.Render("Catalog is empty.") + "\n"
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-8s %-52s %-12s %10s %6s", "ID", "NAME", "VEHICLE", "PRICE", "STOCK")))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%-8s %-52s %-12s %7.2f zł %6d\n",
			item.ID, item.Name, item.Vehicle, item.Price, item.Stock))
	}
	return b.String()
}

func suggestionMessage(s model.SuggestionType) string {
	if msg, ok := suggestionMessages[s]; ok {
		return msg
	}
	return string(s)
}
