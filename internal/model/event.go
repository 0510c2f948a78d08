package model

// EventKind names the outbound analytics event a classification outcome maps
// to. HIGH outcomes emit no event.
type EventKind string

// Analytics event kinds.
const (
	EventLostDemand    EventKind = "search_lost_demand"
	EventTypoCorrected EventKind = "search_typo_corrected"
	EventSearchFailure EventKind = "search_failure"
)

// AnalyticsEvent is the event description handed to the analytics sink.
// Building the description is pure; delivering it is the sink's business.
type AnalyticsEvent struct {
	Name   EventKind
	Params map[string]any
}

// EventFor maps a classification outcome to its analytics event kind.
// The mapping is a pure function of the confidence level; the second return
// is false for outcomes that emit no event.
func EventFor(a QueryAnalysis) (EventKind, bool) {
	switch a.Confidence {
	case ConfidenceHigh:
		return "", false
	case ConfidenceMedium:
		return EventTypoCorrected, true
	case ConfidenceLow:
		return EventSearchFailure, true
	case ConfidenceNoMatch:
		return EventLostDemand, true
	default:
		return "", false
	}
}
