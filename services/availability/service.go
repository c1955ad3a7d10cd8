package availability

import (
	"sort"

	availabilityRepo "allride/database/repository/availability"
	bookingRepo "allride/database/repository/booking"
	"allride/models"
	"allride/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityService is the admin-facing writer for manual availability
// records, plus the read paths the dashboard calendar needs.
type AvailabilityService interface {
	SetUnavailable(vehicleID string, dr models.DateRange, reason string) (*models.AvailabilityRecord, error)
	SetAvailable(vehicleID string, dr models.DateRange, reason string) (*models.AvailabilityRecord, error)
	RemoveUnavailablePeriod(recordID string) error
	ListByVehicle(vehicleID string) ([]models.AvailabilityRecord, error)
	UnavailableDates(vehicleID string, dr models.DateRange) ([]string, error)
	ClearConflicts(vehicleID string) (*ClearResult, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo     availabilityRepo.AvailabilityRepository
	Bookings bookingRepo.BookingRepository
}

// NewAvailabilityService wires the availability writer over its repositories.
func NewAvailabilityService(repo availabilityRepo.AvailabilityRepository, bookings bookingRepo.BookingRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Repo: repo, Bookings: bookings}
}

// SetUnavailable blocks a vehicle for a date range. Rejected with a conflict
// when a confirmed or active booking overlaps the range: dates cannot be
// blocked out from under a customer. Any prior record covering exactly the
// same range is removed first, so repeating the same admin action leaves a
// single record instead of accumulating duplicates.
func (svc *DefaultAvailabilityService) SetUnavailable(vehicleID string, dr models.DateRange, reason string) (*models.AvailabilityRecord, error) {
	overlapping, err := svc.Bookings.FindOverlapping(vehicleID, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, utils.NewConflictError("Cannot set unavailable: Vehicle has existing bookings in this period")
	}

	removed, err := svc.Repo.DeleteExactRange(vehicleID, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		utils.GetLogger().Debug("replaced exact-range availability records",
			zap.String("vehicleId", vehicleID), zap.Int64("removed", removed))
	}

	return svc.insert(vehicleID, dr, false, reason)
}

// SetAvailable inserts an explicit available override unconditionally. No
// booking guard is needed: bookings always take precedence over manual
// records, so marking available can never conflict with one.
func (svc *DefaultAvailabilityService) SetAvailable(vehicleID string, dr models.DateRange, reason string) (*models.AvailabilityRecord, error) {
	return svc.insert(vehicleID, dr, true, reason)
}

func (svc *DefaultAvailabilityService) insert(vehicleID string, dr models.DateRange, available bool, reason string) (*models.AvailabilityRecord, error) {
	record := &models.AvailabilityRecord{
		ID:        uuid.New().String(),
		VehicleID: vehicleID,
		StartDate: dr.Start,
		EndDate:   dr.End,
		Available: available,
		Reason:    reason,
	}
	if err := svc.Repo.Create(record); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("availability record created",
		zap.String("vehicleId", vehicleID),
		zap.Bool("available", available),
		zap.String("start", models.FormatDate(dr.Start)),
		zap.String("end", models.FormatDate(dr.End)))
	return record, nil
}

// RemoveUnavailablePeriod deletes a single manual block by record ID. Only
// unavailable records can be removed through this path; explicit available
// overrides are left alone.
func (svc *DefaultAvailabilityService) RemoveUnavailablePeriod(recordID string) error {
	record, err := svc.Repo.GetByID(recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return utils.NewNotFoundError("availability record", recordID)
	}
	if record.Available {
		return utils.NewValidationError("record is an available override, not an unavailable period")
	}
	return svc.Repo.Delete(recordID)
}

// ListByVehicle returns every manual record for the vehicle, most recent
// start date first.
func (svc *DefaultAvailabilityService) ListByVehicle(vehicleID string) ([]models.AvailabilityRecord, error) {
	return svc.Repo.FindByVehicle(vehicleID)
}

// UnavailableDates expands the manual unavailable records overlapping the
// range into the flat list of blocked days for calendar display.
func (svc *DefaultAvailabilityService) UnavailableDates(vehicleID string, dr models.DateRange) ([]string, error) {
	records, err := svc.Repo.FindOverlapping(vehicleID, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}

	var dates []string
	seen := make(map[string]bool)
	for _, rec := range models.LatestPerRange(records) {
		if rec.Available {
			continue
		}
		for _, day := range rec.Range().Days() {
			if !dr.ContainsDay(day) {
				continue
			}
			key := models.FormatDate(day)
			if !seen[key] {
				seen[key] = true
				dates = append(dates, key)
			}
		}
	}
	sort.Strings(dates)
	return dates, nil
}
