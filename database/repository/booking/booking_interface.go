package bookingRepo

import (
	"time"

	"allride/models"
)

// BookingPatch carries the optional fields an admin may overwrite on an
// existing booking. Nil fields are left untouched.
type BookingPatch struct {
	StartDate      *time.Time
	EndDate        *time.Time
	PickupTime     *string
	DropoffTime    *string
	PickupLocation *string
	Status         *string
}

// BookingStats aggregates per-status counts and completed revenue.
type BookingStats struct {
	Total        int64   `json:"totalBookings"`
	Confirmed    int64   `json:"confirmedBookings"`
	Active       int64   `json:"activeBookings"`
	Completed    int64   `json:"completedBookings"`
	Cancelled    int64   `json:"cancelledBookings"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)

	// FindOverlapping returns confirmed and active bookings for the vehicle
	// whose inclusive date range intersects [start, end].
	FindOverlapping(vehicleID string, start, end time.Time) ([]models.Booking, error)

	// FindBlockingByVehicle returns confirmed and active bookings for the
	// vehicle, used for calendar date blocking.
	FindBlockingByVehicle(vehicleID string) ([]models.Booking, error)

	FindByCustomerPhone(phone string) ([]models.Booking, error)
	FindAll(page, size int) ([]models.Booking, error)
	FindUpcoming(today time.Time, page, size int) ([]models.Booking, error)
	FindByStatus(status string, page, size int) ([]models.Booking, error)

	CountAll() (int64, error)
	CountUpcoming(today time.Time) (int64, error)
	CountByStatus(status string) (int64, error)
	Stats() (*BookingStats, error)
}
