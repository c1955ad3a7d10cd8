package userRepo

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

// UserRepository defines data access for customers.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByPhone(phone string) (*models.User, error)
	ExistsByPhone(phone string) (bool, error)
	CountAll() (int64, error)
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	*baseRepo.Base[models.User]
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{baseRepo.New[models.User](database.Collection("users"), "user")}
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if err := repo.EnsureIndexes(indexes); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	return r.Insert(user)
}

// Update modifies an existing user document.
func (r *MongoUserRepo) Update(user *models.User) error {
	user.UpdatedAt = time.Now()
	return r.Replace(bson.M{"id": user.ID}, user, user.ID)
}

// GetByPhone retrieves a user by phone number. Returns (nil, nil) when absent.
func (r *MongoUserRepo) GetByPhone(phone string) (*models.User, error) {
	return r.FindOne(bson.M{"phone": phone}, phone)
}

// ExistsByPhone reports whether a user with the given phone exists.
func (r *MongoUserRepo) ExistsByPhone(phone string) (bool, error) {
	return r.Exists(bson.M{"phone": phone})
}

// CountAll counts every user document.
func (r *MongoUserRepo) CountAll() (int64, error) {
	return r.Count(bson.M{})
}
