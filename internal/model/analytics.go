package model

import "time"

// ViewMode selects the comparison/aggregation window for dashboard analytics
type ViewMode string

const (
	ViewModeLatest  ViewMode = "latest"  // Most recent assessment vs the one before
	ViewModeTrend   ViewMode = "trend"   // Window of up to 5 recent assessments
	ViewModeOverall ViewMode = "overall" // Every assessment on record
)

// ParseViewMode maps a query value to a ViewMode, defaulting to latest.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewModeTrend:
		return ViewModeTrend
	case ViewModeOverall:
		return ViewModeOverall
	default:
		return ViewModeLatest
	}
}

// Improvement is a category whose latest score exceeds its baseline
type Improvement struct {
	Category      string  `json:"category"`
	Change        float64 `json:"change"`
	BaselineScore float64 `json:"baselineScore"`
	CurrentScore  float64 `json:"currentScore"`
}

// Strength is a top-scoring category over the selected window
type Strength struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// CareerMatch counts how often a career was recommended within the window
type CareerMatch struct {
	Career    string    `json:"career"`
	Frequency int       `json:"frequency"`
	LastSeen  time.Time `json:"lastSeen"`
}

// Dashboard bundles the three derived views for one mode
type Dashboard struct {
	Mode            ViewMode      `json:"mode"`
	AssessmentCount int           `json:"assessmentCount"`
	Improvements    []Improvement `json:"improvements"`
	TopStrengths    []Strength    `json:"topStrengths"`
	CareerMatches   []CareerMatch `json:"careerMatches"`
}
