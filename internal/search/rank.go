package search

import (
	"slices"
	"time"
)

// MaxResults bounds the ranked list shown to the operator.
const MaxResults = 5

// Rank scores every candidate and returns the best MaxResults of them, highest
// score first. Candidates with equal scores keep their input order.
func Rank(candidates []Candidate, f Filter, today time.Time) []Result {
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, Score(c, f, today))
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return b.Score - a.Score
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	return results
}
