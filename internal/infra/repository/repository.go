package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/snapfeedhq/snapfeed/internal/structs"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const dbName = "snapfeed"
const collectionFeedback = "feedback_submissions"
const collectionPhotos = "photos"

var _ Repository = (*MongoRepo)(nil)

type MongoRepo struct {
	collectionFeedback *mongo.Collection
	collectionPhotos   *mongo.Collection
}

func NewRepository(client *mongo.Client) *MongoRepo {
	db := client.Database(dbName)
	return &MongoRepo{
		collectionFeedback: db.Collection(collectionFeedback),
		collectionPhotos:   db.Collection(collectionPhotos),
	}
}

func (r MongoRepo) CreateFeedback(ctx context.Context, submission structs.FeedbackSubmission) error {
	if _, err := r.collectionFeedback.InsertOne(ctx, submission); err != nil {
		return fmt.Errorf("error on create feedback submission: %w", err)
	}
	return nil
}

func (r MongoRepo) GetFeedback(ctx context.Context, id uuid.UUID) (output structs.FeedbackSubmission, err error) {
	filter := bson.D{{Key: "id", Value: id}}
	err = r.collectionFeedback.FindOne(ctx, filter).Decode(&output)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return output, ErrNotFound
		}
		return output, fmt.Errorf("error on get feedback submission: %w", err)
	}

	return output, nil
}

func (r MongoRepo) MarkFeedbackEmailSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	filter := bson.D{{Key: "id", Value: bson.D{{Key: "$eq", Value: id}}}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "email_sent_at", Value: sentAt}}}}
	if _, err := r.collectionFeedback.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error on mark feedback email sent: %w", err)
	}
	return nil
}

func (r MongoRepo) ListFeedback(ctx context.Context, limit, offset int64) (output []structs.FeedbackSubmission, err error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collectionFeedback.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error on list feedback submissions: %w", err)
	}

	if err := cursor.All(ctx, &output); err != nil {
		return nil, fmt.Errorf("error on decode feedback submissions: %w", err)
	}

	return output, nil
}

func (r MongoRepo) CreatePhoto(ctx context.Context, photo structs.Photo) error {
	if _, err := r.collectionPhotos.InsertOne(ctx, photo); err != nil {
		return fmt.Errorf("error on create photo: %w", err)
	}
	return nil
}

func (r MongoRepo) ListPhotos(ctx context.Context, limit, offset int64) (output []structs.Photo, err error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "fetched_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collectionPhotos.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error on list photos: %w", err)
	}

	if err := cursor.All(ctx, &output); err != nil {
		return nil, fmt.Errorf("error on decode photos: %w", err)
	}

	return output, nil
}

func (r MongoRepo) CountPhotos(ctx context.Context) (int64, error) {
	count, err := r.collectionPhotos.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("error on count photos: %w", err)
	}
	return count, nil
}
