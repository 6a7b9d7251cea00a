package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
)

func likertResponse(category string, value float64) model.Response {
	return model.Response{
		LayerID:    "layer1",
		CategoryID: category,
		QuestionID: category + "_q",
		Response:   model.NumericValue(value),
	}
}

func TestCalculateScoresAveragesPerCategory(t *testing.T) {
	responses := []model.Response{
		likertResponse("Linguistic", 3),
		likertResponse("Linguistic", 5),
		likertResponse("Technical Skills", 4),
	}

	scores := CalculateScores(responses)

	require.Len(t, scores, 2)
	assert.Equal(t, 4.0, scores["Linguistic"])
	assert.Equal(t, 4.0, scores["Technical Skills"])
}

func TestCalculateScoresSkipsNonNumeric(t *testing.T) {
	responses := []model.Response{
		likertResponse("Linguistic", 2),
		{
			CategoryID: "Self_Synthesis",
			QuestionID: "synthesis_q1",
			Response:   model.TextValue("I enjoy writing and public speaking."),
		},
		{
			CategoryID: "Action_Plan",
			QuestionID: "plan_q1",
			Response:   model.TextListValue([]string{"shadow a journalist", "take a stats course"}),
		},
	}

	scores := CalculateScores(responses)

	require.Len(t, scores, 1)
	assert.Equal(t, 2.0, scores["Linguistic"])
	assert.NotContains(t, scores, "Self_Synthesis")
	assert.NotContains(t, scores, "Action_Plan")
}

func TestCalculateScoresCoercesNumericStrings(t *testing.T) {
	responses := []model.Response{
		{
			CategoryID: "Interpersonal",
			QuestionID: "inter_q1",
			Response:   model.TextValue("4"),
		},
		{
			CategoryID: "Interpersonal",
			QuestionID: "inter_q2",
			Response:   model.NumericValue(5),
		},
	}

	scores := CalculateScores(responses)

	assert.Equal(t, 4.5, scores["Interpersonal"])
}

func TestCalculateScoresIgnoresClearedAnswers(t *testing.T) {
	// A client clearing an answer sends a null response value; it must not
	// enter the mean as zero.
	var responses []model.Response
	payload := `[
		{"layerId":"layer1","categoryId":"Linguistic","questionId":"l1-ling-1","response":4},
		{"layerId":"layer1","categoryId":"Linguistic","questionId":"l1-ling-2","response":null}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &responses))

	scores := CalculateScores(responses)

	require.Len(t, scores, 1)
	assert.Equal(t, 4.0, scores["Linguistic"])
}

func TestCalculateScoresEmptyInput(t *testing.T) {
	assert.Empty(t, CalculateScores(nil))
	assert.Empty(t, CalculateScores([]model.Response{}))
}

func TestRecommendCareersThreshold(t *testing.T) {
	scores := map[string]float64{
		"Linguistic":           3.9,
		"Logical-Mathematical": 4.0,
	}

	recommendations := RecommendCareers(scores)

	require.NotEmpty(t, recommendations)
	assert.Contains(t, recommendations, "Data Science")
	assert.NotContains(t, recommendations, "Journalism")
}

func TestRecommendCareersEmptyScores(t *testing.T) {
	recommendations := RecommendCareers(map[string]float64{})
	assert.NotNil(t, recommendations)
	assert.Empty(t, recommendations)
}

func TestRecommendCareersOrderedByScoreAndCapped(t *testing.T) {
	scores := map[string]float64{
		"Linguistic":           4.2,
		"Logical-Mathematical": 4.8,
		"Visual-Spatial":       4.5,
	}

	recommendations := RecommendCareers(scores)

	// Strongest category first, full list capped.
	assert.Equal(t, "Data Science", recommendations[0])
	assert.LessOrEqual(t, len(recommendations), MaxRecommendations)
	assert.Len(t, recommendations, MaxRecommendations)
}

func TestRecommendCareersDeduplicates(t *testing.T) {
	// Linguistic and Verbal Aptitude both map to writing-adjacent careers;
	// Big Five - Extraversion and Interpersonal both include Marketing.
	scores := map[string]float64{
		"Interpersonal":           5.0,
		"Big Five - Extraversion": 4.9,
	}

	recommendations := RecommendCareers(scores)

	seen := make(map[string]int)
	for _, career := range recommendations {
		seen[career]++
	}
	for career, count := range seen {
		assert.Equal(t, 1, count, "career %q recommended more than once", career)
	}
	assert.Equal(t, "Human Resources", recommendations[0])
}

func TestRecommendCareersTieBrokenByCategoryName(t *testing.T) {
	scores := map[string]float64{
		"Verbal Aptitude":    4.5,
		"Numerical Aptitude": 4.5,
	}

	recommendations := RecommendCareers(scores)

	// Equal scores resolve alphabetically, so Numerical Aptitude leads.
	assert.Equal(t, "Accounting", recommendations[0])
}
