package model

import "time"

// DemandRecord is one unserved query worth remembering: what the customer
// asked for, reduced to its domain essence, and why the catalog failed it.
type DemandRecord struct {
	Query          string
	Intent         string
	Vehicle        string
	Suggestion     SuggestionType
	TokenValidity  float64
	HasLuxuryBrand bool
	CreatedAt      time.Time
}

// DemandSummary aggregates demand records by intent for reporting.
type DemandSummary struct {
	Intent   string
	Count    int
	LastSeen time.Time
}
