package repository

import (
	"context"
	"fmt"
	"time"

	"bookmystay-backend/internal/apperrors"
	"bookmystay-backend/internal/database"
	"bookmystay-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	MongoBackendName   = "mongodb"
	feedbackCollection = "feedbacks"
)

type MongoFeedbackRepo struct {
	db         *database.Mongo
	collection *mongo.Collection
}

func NewMongoFeedbackRepo(db *database.Mongo) *MongoFeedbackRepo {
	return &MongoFeedbackRepo{
		db:         db,
		collection: db.Collection(feedbackCollection),
	}
}

func (r *MongoFeedbackRepo) Backend() string {
	return MongoBackendName
}

// Append inserts one document. The timestamp defaults to now, truncated to
// the millisecond precision BSON dates keep.
func (r *MongoFeedbackRepo) Append(ctx context.Context, feedback *models.Feedback) error {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return apperrors.Persistence(err)
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return apperrors.Persistence(fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}
	feedback.ID = &id
	return nil
}

// List returns every document, newest first. Ties on createdAt fall back to
// the id, which grows with insertion order.
func (r *MongoFeedbackRepo) List(ctx context.Context) (*models.FeedbackListing, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	defer cursor.Close(ctx)

	records := []models.Feedback{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, apperrors.Persistence(err)
	}
	if records == nil {
		records = []models.Feedback{}
	}

	return &models.FeedbackListing{Records: records}, nil
}

func (r *MongoFeedbackRepo) Ping(ctx context.Context) error {
	return apperrors.Persistence(r.db.Ping(ctx))
}

func (r *MongoFeedbackRepo) Close(ctx context.Context) error {
	return apperrors.Persistence(r.db.Close(ctx))
}

// EnsureIndexes creates the index backing the newest-first listing
func (r *MongoFeedbackRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}
