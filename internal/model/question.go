package model

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeLikert    QuestionType = "likert"     // 1-5 scale, feeds numeric scoring
	QuestionTypeOpenEnded QuestionType = "open-ended" // Free text, excluded from scoring
)

// Question is a single item in the static assessment bank
type Question struct {
	ID       string       `json:"id" bson:"id"`
	Text     string       `json:"text" bson:"text"`
	Type     QuestionType `json:"type" bson:"type"`
	Category string       `json:"category" bson:"category"`
}

// AssessmentLayer is one thematic section of the questionnaire.
// CategoryOrder fixes the presentation sequence; Go maps do not preserve
// insertion order and the session walker needs a stable question sequence.
type AssessmentLayer struct {
	ID            string                `json:"id" bson:"id"`
	Name          string                `json:"name" bson:"name"`
	Description   string                `json:"description" bson:"description"`
	IsOpenEnded   bool                  `json:"isOpenEnded" bson:"isOpenEnded"`
	CategoryOrder []string              `json:"categoryOrder" bson:"categoryOrder"`
	Categories    map[string][]Question `json:"categories" bson:"categories"`
}

// Questions flattens the layer's questions in presentation order.
func (l *AssessmentLayer) Questions() []Question {
	out := make([]Question, 0, l.QuestionCount())
	for _, name := range l.CategoryOrder {
		out = append(out, l.Categories[name]...)
	}
	return out
}

// QuestionCount returns the total number of questions across all categories.
func (l *AssessmentLayer) QuestionCount() int {
	n := 0
	for _, qs := range l.Categories {
		n += len(qs)
	}
	return n
}
