package mongo

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/repository"
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dailyLogCollectionName = "daily_logs"

// mongoDailyRecordRepository implements repository.DailyRecordRepository
// using MongoDB. One document per (user, date) pair.
type mongoDailyRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoDailyRecordRepository creates a new instance of mongoDailyRecordRepository.
func NewMongoDailyRecordRepository(db *mongo.Database) repository.DailyRecordRepository {
	return &mongoDailyRecordRepository{
		collection: db.Collection(dailyLogCollectionName),
	}
}

// Get retrieves the record for one (user, date). Returns ErrNotFound when
// the day has no document yet; the service layer falls back to the
// all-zero default in that case.
func (r *mongoDailyRecordRepository) Get(ctx context.Context, userID, date string) (*domain.DailyRecord, error) {
	var record domain.DailyRecord
	filter := bson.M{"userId": userID, "date": date}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Put upserts the record for its date with merge semantics: only fields
// present in the record are $set, so a nil Protein never clobbers a
// previously logged value, and two rapid writes to different fields do
// not overwrite each other's unrelated fields.
func (r *mongoDailyRecordRepository) Put(ctx context.Context, userID string, record *domain.DailyRecord) error {
	if userID == "" || record.Date == "" {
		return errors.New("user ID and record date are required")
	}

	fields := bson.M{
		"steps":    record.Steps,
		"water":    record.WaterMl,
		"sleep":    record.SleepHrs,
		"calories": record.Calories,
	}
	if record.Protein != nil {
		fields["protein"] = *record.Protein
	}

	filter := bson.M{"userId": userID, "date": record.Date}
	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"userId": userID, "date": record.Date},
	}

	opts := options.Update().SetUpsert(true)
	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return repository.ErrUpdateFailed
	}
	return nil
}

// ListRecent returns up to limit records for the user, descending by date.
// The ISO date string sorts lexicographically in calendar order.
func (r *mongoDailyRecordRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.DailyRecord, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.DailyRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// EnsureDailyLogIndexes creates necessary indexes for the daily_logs
// collection. Call this once during application startup.
func EnsureDailyLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One record per (user, date); upserts key on this pair.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Index creation failure is not fatal; queries still work, slower.
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
