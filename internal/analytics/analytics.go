// Package analytics derives dashboard views from a user's completed
// assessments. Every entry point re-sorts its input chronologically:
// callers are inconsistent about the order they supply (storage returns
// newest-first, in-memory lists may be unsorted), so the sort is mandatory
// rather than trusted. All functions are total over well-formed input;
// sparse data yields smaller result sets, never errors.
package analytics

import (
	"sort"

	"careercompass/internal/model"
)

// ImprovementFloor is the minimum score delta counted as an improvement.
const ImprovementFloor = 0.3

// TopStrengthCount limits the strengths list.
const TopStrengthCount = 3

// trendWindow is how many recent assessments the trend mode considers.
const trendWindow = 5

// sortChronological returns a copy ordered oldest-first by CompletedAt,
// with ID as the deterministic tiebreak for equal timestamps.
func sortChronological(assessments []model.Assessment) []model.Assessment {
	sorted := make([]model.Assessment, len(assessments))
	copy(sorted, assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CompletedAt.Equal(sorted[j].CompletedAt) {
			return sorted[i].CompletedAt.Before(sorted[j].CompletedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// targetWindow selects the mode's aggregation window, inclusive of the most
// recent assessment. Input must already be sorted oldest-first.
func targetWindow(sorted []model.Assessment, mode model.ViewMode) []model.Assessment {
	switch mode {
	case model.ViewModeLatest:
		return sorted[len(sorted)-1:]
	case model.ViewModeTrend:
		if len(sorted) > trendWindow {
			return sorted[len(sorted)-trendWindow:]
		}
		return sorted
	default:
		return sorted
	}
}

// CalculateImprovements reports categories whose latest score exceeds the
// mode's baseline by more than ImprovementFloor, sorted by change
// descending. Fewer than two assessments yields an empty list.
func CalculateImprovements(assessments []model.Assessment, mode model.ViewMode) []model.Improvement {
	if len(assessments) < 2 {
		return []model.Improvement{}
	}

	sorted := sortChronological(assessments)
	latest := sorted[len(sorted)-1]
	previous := sorted[:len(sorted)-1]

	var baseline []model.Assessment
	switch mode {
	case model.ViewModeLatest:
		baseline = previous[len(previous)-1:]
	case model.ViewModeTrend:
		if len(previous) > trendWindow {
			baseline = previous[len(previous)-trendWindow:]
		} else {
			baseline = previous
		}
	default:
		baseline = previous
	}

	improvements := []model.Improvement{}
	for category, current := range latest.Scores {
		total := 0.0
		count := 0
		for _, a := range baseline {
			// A category missing from a baseline assessment contributes
			// nothing, it is not treated as zero.
			if s, ok := a.Scores[category]; ok {
				total += s
				count++
			}
		}
		if count == 0 {
			continue
		}
		baselineScore := total / float64(count)
		change := current - baselineScore
		if change > ImprovementFloor {
			improvements = append(improvements, model.Improvement{
				Category:      category,
				Change:        change,
				BaselineScore: baselineScore,
				CurrentScore:  current,
			})
		}
	}

	sort.Slice(improvements, func(i, j int) bool {
		if improvements[i].Change != improvements[j].Change {
			return improvements[i].Change > improvements[j].Change
		}
		return improvements[i].Category < improvements[j].Category
	})
	return improvements
}

// CalculateTopStrengths averages each category's score over the mode's
// window (inclusive of the most recent assessment) and returns the top
// three, ties broken by category name.
func CalculateTopStrengths(assessments []model.Assessment, mode model.ViewMode) []model.Strength {
	if len(assessments) == 0 {
		return []model.Strength{}
	}

	window := targetWindow(sortChronological(assessments), mode)

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range window {
		for category, score := range a.Scores {
			totals[category] += score
			counts[category]++
		}
	}

	strengths := make([]model.Strength, 0, len(counts))
	for category, count := range counts {
		strengths = append(strengths, model.Strength{
			Category: category,
			Score:    totals[category] / float64(count),
		})
	}

	sort.Slice(strengths, func(i, j int) bool {
		if strengths[i].Score != strengths[j].Score {
			return strengths[i].Score > strengths[j].Score
		}
		return strengths[i].Category < strengths[j].Category
	})
	if len(strengths) > TopStrengthCount {
		strengths = strengths[:TopStrengthCount]
	}
	return strengths
}

// CalculateCareerMatches counts recommended-career occurrences over the
// mode's window and tracks the most recent sighting of each. The full
// frequency-sorted list is returned; callers truncate for display.
func CalculateCareerMatches(assessments []model.Assessment, mode model.ViewMode) []model.CareerMatch {
	if len(assessments) == 0 {
		return []model.CareerMatch{}
	}

	window := targetWindow(sortChronological(assessments), mode)

	counts := make(map[string]*model.CareerMatch)
	for _, a := range window {
		for _, career := range a.RecommendedCareers {
			m, ok := counts[career]
			if !ok {
				m = &model.CareerMatch{Career: career, LastSeen: a.CompletedAt}
				counts[career] = m
			}
			m.Frequency++
			if a.CompletedAt.After(m.LastSeen) {
				m.LastSeen = a.CompletedAt
			}
		}
	}

	matches := make([]model.CareerMatch, 0, len(counts))
	for _, m := range counts {
		matches = append(matches, *m)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Frequency != matches[j].Frequency {
			return matches[i].Frequency > matches[j].Frequency
		}
		return matches[i].Career < matches[j].Career
	})
	return matches
}
