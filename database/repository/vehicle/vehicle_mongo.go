package vehicleRepo

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

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	*baseRepo.Base[models.Vehicle]
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{baseRepo.New[models.Vehicle](database.Collection("vehicles"), "vehicle")}
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "purpose", Value: 1}}},
	}
	if err := repo.EnsureIndexes(indexes); err != nil {
		fmt.Printf("failed to create vehicle indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new vehicle document.
func (r *MongoVehicleRepo) Create(vehicle *models.Vehicle) error {
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	return r.Insert(vehicle)
}

// Update modifies an existing vehicle document.
func (r *MongoVehicleRepo) Update(vehicle *models.Vehicle) error {
	vehicle.UpdatedAt = time.Now()
	return r.Replace(bson.M{"id": vehicle.ID}, vehicle, vehicle.ID)
}

// GetByID retrieves a vehicle by its unique ID. Returns (nil, nil) when absent.
func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	return r.FindOne(bson.M{"id": id}, id)
}

// Exists reports whether a vehicle document with the given ID exists.
func (r *MongoVehicleRepo) Exists(id string) (bool, error) {
	return r.Base.Exists(bson.M{"id": id})
}
