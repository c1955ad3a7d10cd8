package availabilityRepo

import (
	"fmt"
	"time"

	"allride/database"
	baseRepo "allride/database/repository/base"
	"allride/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	*baseRepo.Base[models.AvailabilityRecord]
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{
		baseRepo.New[models.AvailabilityRecord](database.Collection("vehicle_availability"), "availability record"),
	}
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicle_id", Value: 1}, {Key: "start_date", Value: -1}}},
	}
	if err := repo.EnsureIndexes(indexes); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new availability record. Records are append-only; a
// correction is always a fresh insert with later timestamps.
func (r *MongoAvailabilityRepo) Create(record *models.AvailabilityRecord) error {
	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	return r.Insert(record)
}

// GetByID retrieves a record by its unique ID. Returns (nil, nil) when absent.
func (r *MongoAvailabilityRepo) GetByID(id string) (*models.AvailabilityRecord, error) {
	return r.FindOne(bson.M{"id": id}, id)
}

// Delete removes a record by its ID.
func (r *MongoAvailabilityRepo) Delete(id string) error {
	deleted, err := r.DeleteOne(bson.M{"id": id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("availability record with id %s not found", id)
	}
	return nil
}

// FindByVehicle returns every record for the vehicle, most recent start date first.
func (r *MongoAvailabilityRepo) FindByVehicle(vehicleID string) ([]models.AvailabilityRecord, error) {
	filter := bson.M{"vehicle_id": vehicleID}
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	return r.Find(filter, opts)
}

// FindOverlapping returns records for the vehicle whose inclusive range
// intersects [start, end].
func (r *MongoAvailabilityRepo) FindOverlapping(vehicleID string, start, end time.Time) ([]models.AvailabilityRecord, error) {
	filter := bson.M{
		"vehicle_id": vehicleID,
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}
	return r.Find(filter, nil)
}

// DeleteExactRange removes records covering exactly [start, end] for the vehicle.
func (r *MongoAvailabilityRepo) DeleteExactRange(vehicleID string, start, end time.Time) (int64, error) {
	filter := bson.M{
		"vehicle_id": vehicleID,
		"start_date": start,
		"end_date":   end,
	}
	return r.DeleteMany(filter)
}
