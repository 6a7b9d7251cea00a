package model

import "time"

// Assessment is a completed questionnaire run, materialized once when the
// final layer is finished. Immutable after creation apart from deletion.
type Assessment struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	UserID             string     `json:"userId" bson:"userId"`
	CompletedAt        time.Time  `json:"completedAt" bson:"completedAt"`
	Responses          []Response `json:"responses" bson:"responses"`
	Scores             ScoreMap   `json:"scores" bson:"scores"`
	RecommendedCareers []string   `json:"recommendedCareers" bson:"recommendedCareers"`
	MLPrediction       string     `json:"mlPrediction,omitempty" bson:"mlPrediction,omitempty"`
}

// User owns zero or more assessments, loaded lazily from storage.
type User struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	Email        string       `json:"email" bson:"email"`
	Name         string       `json:"name" bson:"name"`
	PasswordHash string       `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time    `json:"createdAt" bson:"createdAt"`
	Assessments  []Assessment `json:"assessments,omitempty" bson:"-"`
}
