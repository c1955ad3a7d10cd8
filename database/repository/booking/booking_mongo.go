package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	*baseRepo.Base[models.Booking]
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{baseRepo.New[models.Booking](database.Collection("bookings"), "booking")}
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicle_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "customer_phone", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "booking_date", Value: -1}}},
	}
	if err := repo.EnsureIndexes(indexes); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new booking document, stamping creation timestamps.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	now := time.Now()
	booking.CreatedAt = now
	booking.BookingDate = now
	booking.UpdatedAt = now
	return r.Insert(booking)
}

// Update overwrites an existing booking document.
func (r *MongoBookingRepo) Update(booking *models.Booking) error {
	booking.UpdatedAt = time.Now()
	return r.Replace(bson.M{"id": booking.ID}, booking, booking.ID)
}

// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.FindOne(bson.M{"id": id}, id)
}
