package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careercompass/internal/model"
)

type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	// GetByUserID returns the user's assessments newest-first; analytics
	// re-sorts defensively and must not rely on this order.
	GetByUserID(ctx context.Context, userID string) ([]model.Assessment, error)
	Delete(ctx context.Context, id, userID string) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{collection: db.Collection("assessments")}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepo) GetByUserID(ctx context.Context, userID string) ([]model.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []model.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) Delete(ctx context.Context, id, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
