package admin

import (
	bookingSvc "allride/services/booking"
	userSvc "allride/services/user"
	vehicleSvc "allride/services/vehicle"

	"allride/models"
)

// Pagination describes one page of an admin listing.
type Pagination struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// AdminService backs the admin dashboard: paginated booking listings and the
// aggregate statistics panel.
type AdminService interface {
	AllBookings(page, size int) ([]models.Booking, *Pagination, error)
	UpcomingBookings(page, size int) ([]models.Booking, *Pagination, error)
	CompletedBookings(page, size int) ([]models.Booking, *Pagination, error)
	DashboardStats() (map[string]interface{}, error)
}

// DefaultAdminService implements AdminService by composing the booking,
// vehicle, and user services.
type DefaultAdminService struct {
	Bookings bookingSvc.BookingService
	Vehicles vehicleSvc.VehicleService
	Users    userSvc.UserService
}

// NewAdminService wires the dashboard service.
func NewAdminService(bookings bookingSvc.BookingService, vehicles vehicleSvc.VehicleService, users userSvc.UserService) *DefaultAdminService {
	return &DefaultAdminService{Bookings: bookings, Vehicles: vehicles, Users: users}
}

func clampPage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}

func paginate(page, size int, total int64) *Pagination {
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return &Pagination{Page: page, Size: size, TotalItems: total, TotalPages: pages}
}

// AllBookings returns one page of every booking, newest first.
func (svc *DefaultAdminService) AllBookings(page, size int) ([]models.Booking, *Pagination, error) {
	page, size = clampPage(page, size)
	bookings, err := svc.Bookings.GetAllBookings(page, size)
	if err != nil {
		return nil, nil, err
	}
	total, err := svc.Bookings.TotalBookingsCount()
	if err != nil {
		return nil, nil, err
	}
	return bookings, paginate(page, size, total), nil
}

// UpcomingBookings returns one page of future non-cancelled bookings.
func (svc *DefaultAdminService) UpcomingBookings(page, size int) ([]models.Booking, *Pagination, error) {
	page, size = clampPage(page, size)
	bookings, err := svc.Bookings.GetUpcomingBookings(page, size)
	if err != nil {
		return nil, nil, err
	}
	total, err := svc.Bookings.UpcomingBookingsCount()
	if err != nil {
		return nil, nil, err
	}
	return bookings, paginate(page, size, total), nil
}

// CompletedBookings returns one page of completed bookings.
func (svc *DefaultAdminService) CompletedBookings(page, size int) ([]models.Booking, *Pagination, error) {
	page, size = clampPage(page, size)
	bookings, err := svc.Bookings.GetCompletedBookings(page, size)
	if err != nil {
		return nil, nil, err
	}
	total, err := svc.Bookings.CompletedBookingsCount()
	if err != nil {
		return nil, nil, err
	}
	return bookings, paginate(page, size, total), nil
}

// DashboardStats aggregates booking, revenue, vehicle, and user counts for
// the stats panel.
func (svc *DefaultAdminService) DashboardStats() (map[string]interface{}, error) {
	bookingStats, err := svc.Bookings.Stats()
	if err != nil {
		return nil, err
	}
	upcoming, err := svc.Bookings.UpcomingBookingsCount()
	if err != nil {
		return nil, err
	}
	vehicleStats, err := svc.Vehicles.ComprehensiveStats()
	if err != nil {
		return nil, err
	}
	totalUsers, err := svc.Users.CountUsers()
	if err != nil {
		return nil, err
	}

	stats := map[string]interface{}{
		"totalBookings":     bookingStats.Total,
		"upcomingBookings":  upcoming,
		"completedBookings": bookingStats.Completed,
		"cancelledBookings": bookingStats.Cancelled,
		"totalRevenue":      bookingStats.TotalRevenue,
		"totalUsers":        totalUsers,
	}
	for k, v := range vehicleStats {
		stats[k] = v
	}
	return stats, nil
}
