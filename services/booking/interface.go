package booking

import (
	bookingRepo "allride/database/repository/booking"
	"allride/models"
)

// CreateBookingInput carries everything needed to create a booking. Dates are
// date-only strings in models.DateLayout.
type CreateBookingInput struct {
	VehicleID        string  `json:"vehicleId"`
	VehicleName      string  `json:"vehicleName"`
	CustomerName     string  `json:"customerName"`
	CustomerPhone    string  `json:"customerPhone"`
	CustomerEmail    string  `json:"customerEmail"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	PickupTime       string  `json:"pickupTime"`
	DropoffTime      string  `json:"dropoffTime"`
	PickupLocation   string  `json:"pickupLocation"`
	AdditionalDriver bool    `json:"additionalDriver"`
	Insurance        string  `json:"insurance"`
	TotalAmount      float64 `json:"totalAmount"`
}

// BookingService manages the booking lifecycle: creation guarded by the
// availability reconciler, validated status transitions, cancellation, and
// the read paths used by customers and the admin dashboard.
type BookingService interface {
	CreateBooking(input CreateBookingInput) (*models.Booking, error)
	GetBookingByID(id string) (*models.Booking, error)
	UpdateStatus(id, status string) (*models.Booking, error)
	CancelBooking(id string) (*models.Booking, error)
	UpdateBooking(id string, patch bookingRepo.BookingPatch) (*models.Booking, error)

	GetBookingsByCustomerPhone(phone string) ([]models.Booking, error)
	GetBlockingBookingsByVehicle(vehicleID string) ([]models.Booking, error)
	GetAllBookings(page, size int) ([]models.Booking, error)
	GetUpcomingBookings(page, size int) ([]models.Booking, error)
	GetCompletedBookings(page, size int) ([]models.Booking, error)

	IsAvailable(vehicleID, startDate, endDate string) (bool, error)
	AvailabilityStatus(vehicleID, startDate, endDate string) (*AvailabilityStatus, error)

	TotalBookingsCount() (int64, error)
	UpcomingBookingsCount() (int64, error)
	CompletedBookingsCount() (int64, error)
	Stats() (*bookingRepo.BookingStats, error)
}
