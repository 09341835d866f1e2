package service

// AlertMetrics records aggregation outcomes. Implementations must be safe for concurrent use.
type AlertMetrics interface {
	// CandidateRequest counts one remote lookup for a category; outcome is "hit" or "miss".
	CandidateRequest(category, outcome string)

	// CategoryResult counts the final result of a category; result is "found", "not_found" or "failed".
	CategoryResult(category, result string)

	// Aggregation counts a finished run by outcome.
	Aggregation(outcome string)
}
