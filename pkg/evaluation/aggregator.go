package evaluation

// Summary rolls a submission's batch verdicts up into counts.
// Total = Passed + Failed always holds.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Aggregate counts verdicts without reordering anything; an empty result
// list is a valid empty submission, not an error.
func Aggregate(results []BatchResult) Summary {
	summary := Summary{Total: len(results)}
	for _, r := range results {
		if r.Status == StatusPass {
			summary.Passed++
		}
	}
	summary.Failed = summary.Total - summary.Passed
	return summary
}
