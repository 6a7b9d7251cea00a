package service

import (
	"fmt"
	"sort"
	"strings"
)

// Deterministic fallback text served whenever an AI upstream is unreachable
// or unconfigured. Keyed off question keywords so the commentary still
// tracks the question's theme.

const counselorFallback = "I'm your career counselor, here to help you make sense of your " +
	"assessment results. Right now I can't reach my knowledge service, but your scores and " +
	"recommended careers on this page are a great starting point: look at your top strengths, " +
	"read through the matched careers, and note which ones genuinely excite you. Feel free to " +
	"ask me again in a moment."

const genericExplanation = "This question is designed to understand your preferences, " +
	"abilities, and tendencies in a way that relates to career fit. Your honest response helps " +
	"create a more accurate picture of your professional profile and identifies careers where " +
	"you're likely to thrive and find satisfaction."

var explanationRules = []struct {
	keywords []string
	text     string
}{
	{
		keywords: []string{"writing", "essay", "read", "debat"},
		text: "This question evaluates your linguistic intelligence - your natural affinity for " +
			"language, communication, and verbal expression. People with strong linguistic abilities " +
			"often excel in careers involving writing, speaking, teaching, or any field requiring " +
			"clear communication, such as journalism, law, education, or public relations.",
	},
	{
		keywords: []string{"data", "statistics", "puzzle", "math"},
		text: "This question measures your logical-mathematical intelligence and analytical " +
			"thinking. People who score highly here often excel in STEM fields, finance, research, " +
			"data science, or any career requiring systematic problem-solving and quantitative analysis.",
	},
	{
		keywords: []string{"team", "collaborat", "conflict", "network"},
		text: "This question assesses your interpersonal intelligence - your ability to understand, " +
			"communicate with, and work effectively with others. High interpersonal skills are " +
			"valuable in leadership, human resources, counseling, sales, marketing, or any career " +
			"built on relationships.",
	},
	{
		keywords: []string{"reflect", "personal", "motivat", "emotion"},
		text: "This question evaluates your intrapersonal intelligence - your self-awareness and " +
			"ability to understand your own motivations and goals. This strength supports independent " +
			"work, entrepreneurship, counseling, research, or any career requiring self-direction.",
	},
	{
		keywords: []string{"visual", "design", "draw", "map"},
		text: "This question measures your visual-spatial intelligence - your ability to think in " +
			"images, visualize concepts, and understand spatial relationships. This strength matters " +
			"in design, architecture, engineering, art, or any field built on visual thinking.",
	},
	{
		keywords: []string{"nature", "environment", "sustain"},
		text: "This question assesses your naturalistic intelligence - your ability to recognize " +
			"patterns in nature and understand environmental systems. This strength is valuable in " +
			"environmental science, agriculture, conservation, or sustainability-focused careers.",
	},
	{
		keywords: []string{"personality", "prefer", "energized"},
		text: "This personality question helps identify your preferred work style and environment. " +
			"Understanding whether you lean introverted or extraverted, structured or flexible, helps " +
			"match you with careers and cultures where you'll naturally thrive.",
	},
	{
		keywords: []string{"skill", "technical", "software", "troubleshoot"},
		text: "This question evaluates your current skill level and learning capacity. Your " +
			"technical and professional skills shape which career paths are immediately accessible " +
			"and which would benefit from further development.",
	},
	{
		keywords: []string{"goal", "value", "balance"},
		text: "This question explores your core values and what motivates you professionally. When " +
			"your work aligns with what you find meaningful, you're far more likely to feel fulfilled " +
			"and perform well; values misalignment is a common cause of career dissatisfaction.",
	},
	{
		keywords: []string{"based on", "synthesis", "top 3"},
		text: "This synthesis question helps you integrate your assessment results into actionable " +
			"self-knowledge. Reflecting on your strengths and articulating your own conclusions is a " +
			"key step in turning scores into a career plan.",
	},
}

// explanationFor picks the fallback explanation matching the question's theme.
func explanationFor(question string) string {
	lower := strings.ToLower(question)
	for _, rule := range explanationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.text
			}
		}
	}
	return genericExplanation
}

// suggestionFor builds a deterministic suggestion from the user's strongest
// categories and top career matches.
func suggestionFor(scores map[string]float64, careers []string) string {
	type scored struct {
		category string
		score    float64
	}
	top := make([]scored, 0, len(scores))
	for c, s := range scores {
		top = append(top, scored{c, s})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].score != top[j].score {
			return top[i].score > top[j].score
		}
		return top[i].category < top[j].category
	})
	if len(top) > 3 {
		top = top[:3]
	}

	var b strings.Builder
	b.WriteString("Based on your assessment results, consider building your answer around ")
	if len(top) > 0 {
		names := make([]string, len(top))
		for i, t := range top {
			names[i] = t.category
		}
		b.WriteString("your strongest areas: ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(". ")
	} else {
		b.WriteString("the activities you most enjoy and return to naturally. ")
	}
	if len(careers) > 0 {
		limit := len(careers)
		if limit > 3 {
			limit = 3
		}
		b.WriteString(fmt.Sprintf("Careers like %s match this profile; mention the ones that genuinely interest you and one concrete step you could take to explore each.",
			strings.Join(careers[:limit], ", ")))
	} else {
		b.WriteString("Name two or three fields you are curious about and one concrete step you could take to explore each.")
	}
	return b.String()
}
