package models

import (
	"fmt"
	"time"
)

// Booking status values. A booking is created as confirmed and may move to
// active, completed, or cancelled. Cancelled is terminal.
const (
	BookingConfirmed = "confirmed"
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the known status values.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingConfirmed, BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// ValidateStatusTransition enforces the booking state machine: unknown values
// are rejected, and a cancelled booking can never be reactivated.
func ValidateStatusTransition(from, to string) error {
	if !ValidBookingStatus(to) {
		return fmt.Errorf("unknown booking status %q", to)
	}
	if from == BookingCancelled && to != BookingCancelled {
		return fmt.Errorf("booking is cancelled and cannot transition to %q", to)
	}
	return nil
}

// Booking represents a customer reservation of a vehicle for a date range.
// The date range [StartDate, EndDate] is inclusive on both ends.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	VehicleID   string `bson:"vehicle_id" json:"vehicleId"`
	VehicleName string `bson:"vehicle_name" json:"vehicleName"`
	// VehicleImageURL is snapshotted from the catalog at creation time so that
	// historical bookings keep displaying the image the customer booked with.
	VehicleImageURL  string    `bson:"vehicle_image_url" json:"vehicleImageUrl"`
	CustomerName     string    `bson:"customer_name" json:"customerName"`
	CustomerPhone    string    `bson:"customer_phone" json:"customerPhone"`
	CustomerEmail    string    `bson:"customer_email" json:"customerEmail"`
	StartDate        time.Time `bson:"start_date" json:"startDate"`
	EndDate          time.Time `bson:"end_date" json:"endDate"`
	PickupTime       string    `bson:"pickup_time" json:"pickupTime"` // "15:04"
	DropoffTime      string    `bson:"dropoff_time" json:"dropoffTime"`
	PickupLocation   string    `bson:"pickup_location" json:"pickupLocation"`
	AdditionalDriver bool      `bson:"additional_driver" json:"additionalDriver"`
	Insurance        string    `bson:"insurance_type" json:"insurance"`
	TotalAmount      float64   `bson:"total_amount" json:"totalAmount"`
	Status           string    `bson:"status" json:"status"`
	BookingDate      time.Time `bson:"booking_date" json:"bookingDate"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// Range returns the booking's inclusive date range.
func (b *Booking) Range() DateRange {
	return DateRange{Start: Midnight(b.StartDate), End: Midnight(b.EndDate)}
}

// Blocking reports whether the booking holds its date range. Only confirmed
// and active bookings block; completed and cancelled ones release the dates.
func (b *Booking) Blocking() bool {
	return b.Status == BookingConfirmed || b.Status == BookingActive
}
