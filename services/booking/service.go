package booking

import (
	availabilityRepo "allride/database/repository/availability"
	bookingRepo "allride/database/repository/booking"
	vehicleRepo "allride/database/repository/vehicle"
	"allride/models"
	"allride/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	VehicleRepo vehicleRepo.VehicleRepository
	reconciler  *Reconciler
	locks       *vehicleLocks
}

// NewBookingService wires a booking service over its repositories.
func NewBookingService(repo bookingRepo.BookingRepository, vehicles vehicleRepo.VehicleRepository, availability availabilityRepo.AvailabilityRepository) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:        repo,
		VehicleRepo: vehicles,
		reconciler:  &Reconciler{Bookings: repo, Availability: availability},
		locks:       newVehicleLocks(),
	}
}

// Reconciler exposes the availability reconciler for collaborators that need
// the same verdict logic (the manual availability writer's overlap guard).
func (svc *DefaultBookingService) Reconciler() *Reconciler {
	return svc.reconciler
}

func (svc *DefaultBookingService) validateCreate(input CreateBookingInput) (models.DateRange, error) {
	if input.VehicleID == "" {
		return models.DateRange{}, utils.NewValidationError("vehicleId is required")
	}
	if input.CustomerName == "" || input.CustomerPhone == "" {
		return models.DateRange{}, utils.NewValidationError("customer name and phone are required")
	}
	return parseRange(input.StartDate, input.EndDate)
}

// parseRange parses and validates a date-only range from the wire.
func parseRange(startDate, endDate string) (models.DateRange, error) {
	start, err := models.ParseDate(startDate)
	if err != nil {
		return models.DateRange{}, utils.NewValidationError("startDate must be in format " + models.DateLayout)
	}
	end, err := models.ParseDate(endDate)
	if err != nil {
		return models.DateRange{}, utils.NewValidationError("endDate must be in format " + models.DateLayout)
	}
	dr, err := models.NewDateRange(start, end)
	if err != nil {
		return models.DateRange{}, utils.NewValidationError("startDate must not be after endDate")
	}
	return dr, nil
}

// CreateBooking validates the request, serializes the availability check and
// insert per vehicle, and persists a confirmed booking. The vehicle's current
// image URL is copied onto the booking at creation time; later catalog edits
// never rewrite past bookings.
func (svc *DefaultBookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	dr, err := svc.validateCreate(input)
	if err != nil {
		return nil, err
	}

	vehicle, err := svc.VehicleRepo.GetByID(input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, utils.NewNotFoundError("vehicle", input.VehicleID)
	}

	// Hold the per-vehicle lock across check and insert so concurrent
	// requests for the same vehicle cannot both pass the check.
	lock := svc.locks.get(input.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	available, err := svc.reconciler.IsAvailable(input.VehicleID, dr)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, utils.NewConflictError("Vehicle is not available for the selected dates")
	}

	name := input.VehicleName
	if name == "" {
		name = vehicle.Name
	}

	booking := &models.Booking{
		ID:               uuid.New().String(),
		VehicleID:        input.VehicleID,
		VehicleName:      name,
		VehicleImageURL:  vehicle.ImageURL,
		CustomerName:     input.CustomerName,
		CustomerPhone:    input.CustomerPhone,
		CustomerEmail:    input.CustomerEmail,
		StartDate:        dr.Start,
		EndDate:          dr.End,
		PickupTime:       input.PickupTime,
		DropoffTime:      input.DropoffTime,
		PickupLocation:   input.PickupLocation,
		AdditionalDriver: input.AdditionalDriver,
		Insurance:        input.Insurance,
		TotalAmount:      input.TotalAmount,
		Status:           models.BookingConfirmed,
	}

	if err := svc.Repo.Create(booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("vehicleId", booking.VehicleID),
		zap.String("start", models.FormatDate(booking.StartDate)),
		zap.String("end", models.FormatDate(booking.EndDate)))
	return booking, nil
}

// GetBookingByID fetches a booking or reports NotFound.
func (svc *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("booking", id)
	}
	return booking, nil
}

// UpdateStatus applies a validated status transition. Unknown statuses and
// transitions out of cancelled are rejected.
func (svc *DefaultBookingService) UpdateStatus(id, status string) (*models.Booking, error) {
	booking, err := svc.GetBookingByID(id)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateStatusTransition(booking.Status, status); err != nil {
		return nil, utils.NewValidationError(err.Error())
	}
	booking.Status = status
	if err := svc.Repo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CancelBooking sets the terminal cancelled status. The date range becomes
// free again purely because the reconciler ignores cancelled bookings; no
// availability record is touched.
func (svc *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	booking, err := svc.GetBookingByID(id)
	if err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled
	if err := svc.Repo.Update(booking); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking cancelled", zap.String("bookingId", id))
	return booking, nil
}

// UpdateBooking applies an admin field patch. A status change inside the
// patch goes through the same transition validation as UpdateStatus.
func (svc *DefaultBookingService) UpdateBooking(id string, patch bookingRepo.BookingPatch) (*models.Booking, error) {
	booking, err := svc.GetBookingByID(id)
	if err != nil {
		return nil, err
	}

	if patch.StartDate != nil {
		booking.StartDate = models.Midnight(*patch.StartDate)
	}
	if patch.EndDate != nil {
		booking.EndDate = models.Midnight(*patch.EndDate)
	}
	if booking.StartDate.After(booking.EndDate) {
		return nil, utils.NewValidationError("startDate must not be after endDate")
	}
	if patch.PickupTime != nil {
		booking.PickupTime = *patch.PickupTime
	}
	if patch.DropoffTime != nil {
		booking.DropoffTime = *patch.DropoffTime
	}
	if patch.PickupLocation != nil {
		booking.PickupLocation = *patch.PickupLocation
	}
	if patch.Status != nil {
		if err := models.ValidateStatusTransition(booking.Status, *patch.Status); err != nil {
			return nil, utils.NewValidationError(err.Error())
		}
		booking.Status = *patch.Status
	}

	if err := svc.Repo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBookingsByCustomerPhone returns the customer's bookings, newest first.
func (svc *DefaultBookingService) GetBookingsByCustomerPhone(phone string) ([]models.Booking, error) {
	return svc.Repo.FindByCustomerPhone(phone)
}

// GetBlockingBookingsByVehicle returns confirmed/active bookings for calendar
// date blocking.
func (svc *DefaultBookingService) GetBlockingBookingsByVehicle(vehicleID string) ([]models.Booking, error) {
	return svc.Repo.FindBlockingByVehicle(vehicleID)
}

// GetAllBookings returns a page of bookings, newest booking date first.
func (svc *DefaultBookingService) GetAllBookings(page, size int) ([]models.Booking, error) {
	return svc.Repo.FindAll(page, size)
}

// GetUpcomingBookings returns a page of not-cancelled bookings starting today
// or later.
func (svc *DefaultBookingService) GetUpcomingBookings(page, size int) ([]models.Booking, error) {
	return svc.Repo.FindUpcoming(todayMidnight(), page, size)
}

// GetCompletedBookings returns a page of completed bookings.
func (svc *DefaultBookingService) GetCompletedBookings(page, size int) ([]models.Booking, error) {
	return svc.Repo.FindByStatus(models.BookingCompleted, page, size)
}

// IsAvailable answers the boolean availability query for the wire-format range.
func (svc *DefaultBookingService) IsAvailable(vehicleID, startDate, endDate string) (bool, error) {
	dr, err := parseRange(startDate, endDate)
	if err != nil {
		return false, err
	}
	return svc.reconciler.IsAvailable(vehicleID, dr)
}

// AvailabilityStatus answers the rich availability query for the wire-format range.
func (svc *DefaultBookingService) AvailabilityStatus(vehicleID, startDate, endDate string) (*AvailabilityStatus, error) {
	dr, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return svc.reconciler.Status(vehicleID, dr)
}

func (svc *DefaultBookingService) TotalBookingsCount() (int64, error) {
	return svc.Repo.CountAll()
}

func (svc *DefaultBookingService) UpcomingBookingsCount() (int64, error) {
	return svc.Repo.CountUpcoming(todayMidnight())
}

func (svc *DefaultBookingService) CompletedBookingsCount() (int64, error) {
	return svc.Repo.CountByStatus(models.BookingCompleted)
}

// Stats aggregates per-status counts and completed revenue.
func (svc *DefaultBookingService) Stats() (*bookingRepo.BookingStats, error) {
	return svc.Repo.Stats()
}
