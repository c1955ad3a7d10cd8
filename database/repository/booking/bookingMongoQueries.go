// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	baseRepo "allride/database/repository/base"
	"allride/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// blockingStatuses are the statuses that hold a vehicle's dates.
var blockingStatuses = []string{models.BookingConfirmed, models.BookingActive}

// pageOpts converts page/size into skip/limit. Size zero means no limit.
func pageOpts(page, size int, sort bson.D) *options.FindOptions {
	opts := options.Find().SetSort(sort)
	if size > 0 {
		opts.SetSkip(int64(page * size)).SetLimit(int64(size))
	}
	return opts
}

// FindOverlapping returns confirmed/active bookings for the vehicle whose
// inclusive date range intersects [start, end]: a booking overlaps when it
// does not end before the range starts nor start after the range ends.
func (r *MongoBookingRepo) FindOverlapping(vehicleID string, start, end time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"vehicle_id": vehicleID,
		"status":     bson.M{"$in": blockingStatuses},
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}
	return r.Find(filter, nil)
}

// FindBlockingByVehicle returns confirmed and active bookings for calendar
// date blocking.
func (r *MongoBookingRepo) FindBlockingByVehicle(vehicleID string) ([]models.Booking, error) {
	filter := bson.M{
		"vehicle_id": vehicleID,
		"status":     bson.M{"$in": blockingStatuses},
	}
	return r.Find(filter, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
}

// FindByCustomerPhone returns the customer's bookings, newest first.
func (r *MongoBookingRepo) FindByCustomerPhone(phone string) ([]models.Booking, error) {
	filter := bson.M{"customer_phone": phone}
	return r.Find(filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// FindAll returns a page of bookings ordered by booking date descending.
func (r *MongoBookingRepo) FindAll(page, size int) ([]models.Booking, error) {
	return r.Find(bson.M{}, pageOpts(page, size, bson.D{{Key: "booking_date", Value: -1}}))
}

// upcomingFilter matches bookings starting today or later that are not cancelled.
func upcomingFilter(today time.Time) bson.M {
	return bson.M{
		"start_date": bson.M{"$gte": today},
		"status":     bson.M{"$ne": models.BookingCancelled},
	}
}

// FindUpcoming returns a page of bookings starting on or after today.
func (r *MongoBookingRepo) FindUpcoming(today time.Time, page, size int) ([]models.Booking, error) {
	return r.Find(upcomingFilter(today), pageOpts(page, size, bson.D{{Key: "start_date", Value: 1}}))
}

// FindByStatus returns a page of bookings with the given status, newest first.
func (r *MongoBookingRepo) FindByStatus(status string, page, size int) ([]models.Booking, error) {
	return r.Find(bson.M{"status": status}, pageOpts(page, size, bson.D{{Key: "booking_date", Value: -1}}))
}

// CountAll counts every booking document.
func (r *MongoBookingRepo) CountAll() (int64, error) {
	return r.Count(bson.M{})
}

// CountUpcoming counts bookings starting on or after today.
func (r *MongoBookingRepo) CountUpcoming(today time.Time) (int64, error) {
	return r.Count(upcomingFilter(today))
}

// CountByStatus counts bookings with the given status.
func (r *MongoBookingRepo) CountByStatus(status string) (int64, error) {
	return r.Count(bson.M{"status": status})
}

// Stats aggregates per-status counts and the revenue sum over completed bookings.
func (r *MongoBookingRepo) Stats() (*BookingStats, error) {
	stats := &BookingStats{}

	var err error
	if stats.Total, err = r.CountAll(); err != nil {
		return nil, err
	}
	if stats.Confirmed, err = r.CountByStatus(models.BookingConfirmed); err != nil {
		return nil, err
	}
	if stats.Active, err = r.CountByStatus(models.BookingActive); err != nil {
		return nil, err
	}
	if stats.Completed, err = r.CountByStatus(models.BookingCompleted); err != nil {
		return nil, err
	}
	if stats.Cancelled, err = r.CountByStatus(models.BookingCancelled); err != nil {
		return nil, err
	}

	ctx, cancel := baseRepo.Context(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": models.BookingCompleted}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}},
	}
	cursor, err := r.Coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var row struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode revenue: %w", err)
		}
	}
	stats.TotalRevenue = row.Total
	return stats, nil
}
