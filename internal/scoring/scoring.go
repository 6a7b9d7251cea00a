// Package scoring reduces collected responses to per-category scores and
// maps scored categories to career recommendations. All functions are pure
// and never fail: malformed values are excluded, not surfaced.
package scoring

import (
	"sort"

	"careercompass/internal/bank"
	"careercompass/internal/model"
)

// RecommendationThreshold is the minimum category score that contributes
// careers to a recommendation. One canonical rule applies everywhere.
const RecommendationThreshold = 4.0

// MaxRecommendations caps the recommendation list.
const MaxRecommendations = 10

// CalculateScores averages numeric responses per category. Open-ended and
// otherwise non-numeric responses are skipped; a category with no numeric
// responses is absent from the result rather than reported as zero.
func CalculateScores(responses []model.Response) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range responses {
		n, ok := r.Response.Numeric()
		if !ok {
			continue
		}
		totals[r.CategoryID] += n
		counts[r.CategoryID]++
	}

	scores := make(map[string]float64, len(counts))
	for category, count := range counts {
		scores[category] = totals[category] / float64(count)
	}
	return scores
}

// RecommendCareers unions the career lists of every category scoring at or
// above the threshold. Stronger categories are visited first so their
// careers take priority; duplicates keep their first-seen position and the
// result is capped at MaxRecommendations. An empty result means "no
// recommendation", not an error.
func RecommendCareers(scores map[string]float64) []string {
	type scored struct {
		category string
		score    float64
	}

	qualified := make([]scored, 0, len(scores))
	for category, score := range scores {
		if score >= RecommendationThreshold {
			qualified = append(qualified, scored{category, score})
		}
	}
	sort.Slice(qualified, func(i, j int) bool {
		if qualified[i].score != qualified[j].score {
			return qualified[i].score > qualified[j].score
		}
		return qualified[i].category < qualified[j].category
	})

	seen := make(map[string]bool)
	recommendations := []string{}
	for _, s := range qualified {
		for _, career := range bank.CareersForCategory(s.category) {
			if seen[career] {
				continue
			}
			seen[career] = true
			recommendations = append(recommendations, career)
			if len(recommendations) == MaxRecommendations {
				return recommendations
			}
		}
	}
	return recommendations
}
