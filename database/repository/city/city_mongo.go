package cityRepo

import (
	"fmt"

	"allride/database"
	baseRepo "allride/database/repository/base"
	"allride/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CityRepository defines data access for serviceable cities.
type CityRepository interface {
	Create(city *models.City) error
	Update(city *models.City) error
	GetByID(id string) (*models.City, error)
	ExistsByName(name string) (bool, error)
	ListActive() ([]models.City, error)
	Count() (int64, error)
}

// MongoCityRepo implements CityRepository using MongoDB.
type MongoCityRepo struct {
	*baseRepo.Base[models.City]
}

// NewMongoCityRepo creates a new instance of CityRepository using MongoDB.
func NewMongoCityRepo() CityRepository {
	repo := &MongoCityRepo{baseRepo.New[models.City](database.Collection("cities"), "city")}
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if err := repo.EnsureIndexes(indexes); err != nil {
		fmt.Printf("failed to create city indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new city document.
func (r *MongoCityRepo) Create(city *models.City) error {
	return r.Insert(city)
}

// Update modifies an existing city document.
func (r *MongoCityRepo) Update(city *models.City) error {
	return r.Replace(bson.M{"id": city.ID}, city, city.ID)
}

// GetByID retrieves a city by its unique ID. Returns (nil, nil) when absent.
func (r *MongoCityRepo) GetByID(id string) (*models.City, error) {
	return r.FindOne(bson.M{"id": id}, id)
}

// ExistsByName reports whether a city with the given name exists.
func (r *MongoCityRepo) ExistsByName(name string) (bool, error) {
	return r.Exists(bson.M{"name": name})
}

// ListActive retrieves every active city.
func (r *MongoCityRepo) ListActive() ([]models.City, error) {
	return r.Find(bson.M{"is_active": true}, nil)
}

// Count reports the number of active cities.
func (r *MongoCityRepo) Count() (int64, error) {
	return r.Base.Count(bson.M{"is_active": true})
}
