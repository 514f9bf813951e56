package repository

import (
	"context"
	"errors"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShareTokenRepository implements ShareTokenRepository
type MongoShareTokenRepository struct {
	collection *mongo.Collection
}

// shareTokenDoc is the Mongo document for share tokens.
type shareTokenDoc struct {
	ID        string    `bson:"_id"`
	TripID    string    `bson:"tripId"`
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
}

// NewMongoShareTokenRepository creates a new share token repository
func NewMongoShareTokenRepository(db *mongo.Database) repository.ShareTokenRepository {
	collection := db.Collection("share_tokens")

	ctx := context.Background()
	tokenIndex := mongo.IndexModel{
		Keys:    bson.M{"token": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, tokenIndex)

	tripIndex := mongo.IndexModel{
		Keys: bson.M{"tripId": 1},
	}
	collection.Indexes().CreateOne(ctx, tripIndex)

	// Mongo reaps expired tokens on its own; PurgeExpired stays as a
	// belt-and-braces path for the in-memory implementation.
	ttlIndex := mongo.IndexModel{
		Keys:    bson.M{"expiresAt": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	collection.Indexes().CreateOne(ctx, ttlIndex)

	return &MongoShareTokenRepository{
		collection: collection,
	}
}

// Replace installs token as the trip's single active token.
func (r *MongoShareTokenRepository) Replace(ctx context.Context, token *entity.ShareToken) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"tripId": token.TripID}); err != nil {
		return err
	}
	_, err := r.collection.InsertOne(ctx, shareTokenDoc{
		ID:        token.ID,
		TripID:    token.TripID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	})
	return err
}

// GetActiveByTrip finds the trip's unexpired token.
func (r *MongoShareTokenRepository) GetActiveByTrip(ctx context.Context, tripID string, now time.Time) (*entity.ShareToken, error) {
	var doc shareTokenDoc
	err := r.collection.FindOne(ctx, bson.M{
		"tripId":    tripID,
		"expiresAt": bson.M{"$gt": now},
	}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrShareTokenNotFound
		}
		return nil, err
	}
	return docToShareToken(&doc), nil
}

// GetByToken finds a token record by its token string.
func (r *MongoShareTokenRepository) GetByToken(ctx context.Context, token string) (*entity.ShareToken, error) {
	var doc shareTokenDoc
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrShareTokenNotFound
		}
		return nil, err
	}
	return docToShareToken(&doc), nil
}

// DeleteByTrip removes all tokens for the trip.
func (r *MongoShareTokenRepository) DeleteByTrip(ctx context.Context, tripID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"tripId": tripID})
	return err
}

// PurgeExpired removes tokens past their expiry.
func (r *MongoShareTokenRepository) PurgeExpired(ctx context.Context, now time.Time) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": now}})
	return err
}

func docToShareToken(doc *shareTokenDoc) *entity.ShareToken {
	return &entity.ShareToken{
		ID:        doc.ID,
		TripID:    doc.TripID,
		Token:     doc.Token,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}
}
