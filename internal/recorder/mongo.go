package recorder

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stock-price-predictor/internal/models"
)

// MongoRecorder inserts one document per prediction.
type MongoRecorder struct {
	client *mongo.Client
	pc     *mongo.Collection
}

// NewMongoRecorder wraps an audit collection. The ticker/time index is
// best-effort; a failure is only logged.
func NewMongoRecorder(ctx context.Context, client *mongo.Client, collection *mongo.Collection) *MongoRecorder {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ticker", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		log.Printf("Could not create index on predictions (may already exist): %v", err)
	}
	return &MongoRecorder{client: client, pc: collection}
}

// RecordPrediction inserts rec. A record whose id is already stored counts as
// recorded.
func (r *MongoRecorder) RecordPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	if _, err := r.pc.InsertOne(ctx, rec); err != nil {
		if IsDuplicateKeyError(err) {
			log.Printf("Prediction %s already recorded", rec.Id)
			return nil
		}
		return fmt.Errorf("mongo insert prediction: %w", err)
	}
	return nil
}

// IsDuplicateKeyError reports whether err is a MongoDB E11000 write error.
func IsDuplicateKeyError(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var be mongo.BulkWriteException
	if errors.As(err, &be) {
		for _, e := range be.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}

// Close disconnects the client when the recorder owns one.
func (r *MongoRecorder) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Disconnect(context.Background()); err != nil {
		return err
	}
	log.Println("MongoDB client disconnected.")
	return nil
}
