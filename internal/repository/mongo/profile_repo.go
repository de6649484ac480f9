package mongo

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository using MongoDB.
// One document per user, keyed by the derived user ID string.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new instance of mongoProfileRepository.
// It expects a connected *mongo.Database instance.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Get retrieves a user's profile document.
func (r *mongoProfileRepository) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	filter := bson.M{"_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Put saves the full profile with merge semantics (upsert + $set).
// Profiles are created once during onboarding and only ever replaced by a
// full re-submission, so every field is written.
func (r *mongoProfileRepository) Put(ctx context.Context, profile *domain.UserProfile) error {
	if profile.UserID == "" {
		return errors.New("profile user ID is required")
	}

	now := time.Now().UTC()
	profile.UpdatedAt = now

	filter := bson.M{"_id": profile.UserID}
	update := bson.M{
		"$set": bson.M{
			"name":       profile.Name,
			"age":        profile.Age,
			"height":     profile.HeightCm,
			"weight":     profile.WeightKg,
			"bloodGroup": profile.BloodGroup,
			"gender":     profile.Gender,
			"updatedAt":  now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}
