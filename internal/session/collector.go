// Package session tracks an in-progress assessment: the current position in
// the layer/question sequence, the responses collected so far, and the
// partial scores recomputed after every mutation. A session is serializable
// so an interrupted run can resume from a stored snapshot.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"careercompass/internal/bank"
	"careercompass/internal/model"
	"careercompass/internal/scoring"
)

var (
	// ErrUnanswered means Next was called before the current question had a response.
	ErrUnanswered = errors.New("current question has no response")
	// ErrNoQuestion means the session has no current question (terminal state).
	ErrNoQuestion = errors.New("no current question")
	// ErrNotComplete means Complete was called before the final layer finished.
	ErrNotComplete = errors.New("assessment is not complete")
	// ErrUnknownQuestion means a response referenced a question absent from the bank.
	ErrUnknownQuestion = errors.New("question not in assessment bank")
)

// Snapshot is the serializable resume state. Exactly these four fields are
// checkpointed to the draft store after every mutation.
type Snapshot struct {
	CurrentLayerIndex int              `json:"currentLayerIndex"`
	Responses         []model.Response `json:"responses"`
	CompletedLayers   []string         `json:"completedLayers"`
	Scores            model.ScoreMap   `json:"scores"`
}

// Collector walks the fixed layer sequence one question at a time.
type Collector struct {
	layers          []model.AssessmentLayer
	layerIndex      int
	questionIndex   int
	responses       []model.Response
	completedLayers []string
	scores          map[string]float64
	done            bool
}

// New starts a fresh session over the static bank.
func New() *Collector {
	return &Collector{
		layers:          bank.Layers(),
		responses:       []model.Response{},
		completedLayers: []string{},
		scores:          map[string]float64{},
	}
}

// Restore rebuilds a session from a snapshot. The question pointer resumes
// at the first unanswered question of the current layer.
func Restore(snap Snapshot) *Collector {
	c := New()
	if snap.CurrentLayerIndex >= len(c.layers) {
		c.layerIndex = len(c.layers) - 1
		c.done = true
	} else if snap.CurrentLayerIndex > 0 {
		c.layerIndex = snap.CurrentLayerIndex
	}
	if snap.Responses != nil {
		c.responses = snap.Responses
	}
	if snap.CompletedLayers != nil {
		c.completedLayers = snap.CompletedLayers
	}
	c.scores = scoring.CalculateScores(c.responses)
	if !c.done {
		c.questionIndex = c.resumeIndex()
	}
	return c
}

// Snapshot captures the resume state.
func (c *Collector) Snapshot() Snapshot {
	layerIndex := c.layerIndex
	if c.done {
		layerIndex = len(c.layers)
	}
	responses := make([]model.Response, len(c.responses))
	copy(responses, c.responses)
	completed := make([]string, len(c.completedLayers))
	copy(completed, c.completedLayers)
	return Snapshot{
		CurrentLayerIndex: layerIndex,
		Responses:         responses,
		CompletedLayers:   completed,
		Scores:            model.ScoreMap(c.scores),
	}
}

// resumeIndex finds the first unanswered question in the current layer,
// clamped to the last question.
func (c *Collector) resumeIndex() int {
	questions := c.layers[c.layerIndex].Questions()
	for i, q := range questions {
		if c.responseFor(q.ID) == nil {
			return i
		}
	}
	return len(questions) - 1
}

func (c *Collector) responseFor(questionID string) *model.Response {
	for i := range c.responses {
		if c.responses[i].QuestionID == questionID {
			return &c.responses[i]
		}
	}
	return nil
}

// CurrentLayer returns the layer in progress, or nil once complete.
func (c *Collector) CurrentLayer() *model.AssessmentLayer {
	if c.done {
		return nil
	}
	return &c.layers[c.layerIndex]
}

// CurrentQuestion returns the question awaiting an answer, or nil once complete.
func (c *Collector) CurrentQuestion() *model.Question {
	layer := c.CurrentLayer()
	if layer == nil {
		return nil
	}
	questions := layer.Questions()
	if c.questionIndex >= len(questions) {
		return nil
	}
	return &questions[c.questionIndex]
}

// Done reports whether the final layer has been completed.
func (c *Collector) Done() bool {
	return c.done
}

// Responses returns the collected responses in insertion order.
func (c *Collector) Responses() []model.Response {
	out := make([]model.Response, len(c.responses))
	copy(out, c.responses)
	return out
}

// CompletedLayers returns the ids of finished layers.
func (c *Collector) CompletedLayers() []string {
	out := make([]string, len(c.completedLayers))
	copy(out, c.completedLayers)
	return out
}

// Scores returns the partial per-category scores computed so far.
func (c *Collector) Scores() map[string]float64 {
	out := make(map[string]float64, len(c.scores))
	for k, v := range c.scores {
		out[k] = v
	}
	return out
}

// Answer records a response for the current question. Answering again
// overwrites the earlier response (last write wins); it does not advance
// the question pointer. Partial scores are recomputed on every call.
func (c *Collector) Answer(value model.ResponseValue) error {
	question := c.CurrentQuestion()
	if question == nil {
		return ErrNoQuestion
	}
	layer := c.CurrentLayer()

	response := model.Response{
		LayerID:      layer.ID,
		CategoryID:   question.Category,
		QuestionID:   question.ID,
		QuestionText: question.Text,
		Response:     value,
	}
	if existing := c.responseFor(question.ID); existing != nil {
		*existing = response
	} else {
		c.responses = append(c.responses, response)
	}
	c.scores = scoring.CalculateScores(c.responses)
	return nil
}

// AnswerQuestion records a response for an arbitrary bank question, used
// when revisiting earlier answers without moving the pointer there.
func (c *Collector) AnswerQuestion(questionID string, value model.ResponseValue) error {
	question, layer := bank.QuestionByID(questionID)
	if question == nil {
		return ErrUnknownQuestion
	}
	response := model.Response{
		LayerID:      layer.ID,
		CategoryID:   question.Category,
		QuestionID:   question.ID,
		QuestionText: question.Text,
		Response:     value,
	}
	if existing := c.responseFor(question.ID); existing != nil {
		*existing = response
	} else {
		c.responses = append(c.responses, response)
	}
	c.scores = scoring.CalculateScores(c.responses)
	return nil
}

// Next advances to the next question. At the last question of a layer it
// completes the layer instead; completing the final layer moves the session
// to its terminal state. The current question must have a response.
func (c *Collector) Next() error {
	question := c.CurrentQuestion()
	if question == nil {
		return ErrNoQuestion
	}
	if c.responseFor(question.ID) == nil {
		return ErrUnanswered
	}

	layer := c.CurrentLayer()
	if c.questionIndex < len(layer.Questions())-1 {
		c.questionIndex++
		return nil
	}

	c.completedLayers = append(c.completedLayers, layer.ID)
	if c.layerIndex < len(c.layers)-1 {
		c.layerIndex++
		c.questionIndex = 0
		return nil
	}
	c.done = true
	return nil
}

// Back steps to the previous question. At the first question of a layer it
// re-enters the previous layer at its last question, removing that layer
// from the completed set. At the very first question it is a no-op.
func (c *Collector) Back() {
	if c.done {
		c.done = false
		c.questionIndex = len(c.layers[c.layerIndex].Questions()) - 1
		c.removeCompleted(c.layers[c.layerIndex].ID)
		return
	}
	if c.questionIndex > 0 {
		c.questionIndex--
		return
	}
	if c.layerIndex == 0 {
		return
	}
	c.layerIndex--
	c.questionIndex = len(c.layers[c.layerIndex].Questions()) - 1
	c.removeCompleted(c.layers[c.layerIndex].ID)
}

func (c *Collector) removeCompleted(layerID string) {
	kept := c.completedLayers[:0]
	for _, id := range c.completedLayers {
		if id != layerID {
			kept = append(kept, id)
		}
	}
	c.completedLayers = kept
}

// Complete materializes the immutable assessment record. Valid only in the
// terminal state; scoring and career mapping run exactly once here.
func (c *Collector) Complete(userID string) (*model.Assessment, error) {
	if !c.done {
		return nil, ErrNotComplete
	}
	scores := scoring.CalculateScores(c.responses)
	careers := scoring.RecommendCareers(scores)
	assessment := &model.Assessment{
		ID:                 uuid.New().String(),
		UserID:             userID,
		CompletedAt:        time.Now().UTC(),
		Responses:          c.Responses(),
		Scores:             scores,
		RecommendedCareers: careers,
	}
	if len(careers) > 0 {
		assessment.MLPrediction = careers[0]
	}
	return assessment, nil
}

// Progress reports answered and total question counts across all layers.
func (c *Collector) Progress() (answered, total int) {
	for i := range c.layers {
		total += c.layers[i].QuestionCount()
	}
	return len(c.responses), total
}
