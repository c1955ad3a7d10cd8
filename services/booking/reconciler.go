package booking

import (
	"fmt"
	"time"

	availabilityRepo "allride/database/repository/availability"
	bookingRepo "allride/database/repository/booking"
	"allride/models"
	"allride/utils"

	"go.uber.org/zap"
)

// Reconciler computes the authoritative available/unavailable verdict for a
// vehicle and date range by merging bookings with manual availability records.
//
// Policy, in order:
//  1. A confirmed or active booking overlapping the range always wins: the
//     vehicle is unavailable and no manual record can override a live
//     reservation.
//  2. Manual records overlapping the range are grouped by exact
//     (startDate, endDate) pair; within each group only the most recently
//     created record counts (ties on createdAt go to the greater record ID).
//  3. Any surviving record with available=false makes the verdict unavailable.
//  4. Otherwise any surviving record with available=true makes it available.
//  5. With no manual records at all, the vehicle is available by default.
//
// Store failures propagate to the caller unchanged: on doubt, do not
// double-book.
type Reconciler struct {
	Bookings     bookingRepo.BookingRepository
	Availability availabilityRepo.AvailabilityRepository
}

// AvailabilityStatus is the rich verdict returned alongside the boolean.
type AvailabilityStatus struct {
	VehicleID              string   `json:"vehicleId"`
	StartDate              string   `json:"startDate"`
	EndDate                string   `json:"endDate"`
	BookedDates            []string `json:"bookedDates"`
	ManualUnavailableDates []string `json:"manualUnavailableDates"`
	AllUnavailableDates    []string `json:"allUnavailableDates"`
	IsAvailable            bool     `json:"isAvailable"`
}

// IsAvailable reports whether the vehicle may be booked for the inclusive
// range [start, end]. The caller is responsible for range validation; an
// inverted range is a programming error here.
func (rc *Reconciler) IsAvailable(vehicleID string, dr models.DateRange) (bool, error) {
	overlapping, err := rc.Bookings.FindOverlapping(vehicleID, dr.Start, dr.End)
	if err != nil {
		return false, fmt.Errorf("reconciler: booking lookup failed: %w", err)
	}
	if len(overlapping) > 0 {
		return false, nil
	}

	records, err := rc.Availability.FindOverlapping(vehicleID, dr.Start, dr.End)
	if err != nil {
		return false, fmt.Errorf("reconciler: availability lookup failed: %w", err)
	}
	if len(records) == 0 {
		return true, nil
	}

	latest := models.LatestPerRange(records)
	for _, rec := range latest {
		if !rec.Available {
			utils.GetLogger().Debug("vehicle blocked by manual record",
				zap.String("vehicleId", vehicleID),
				zap.String("recordId", rec.ID),
				zap.String("reason", rec.Reason))
			return false, nil
		}
	}
	// Only explicit available overrides survived.
	return true, nil
}

// Status computes the rich availability breakdown for a vehicle and range:
// the individual days blocked by bookings, the days blocked by manual
// records, and the overall verdict.
func (rc *Reconciler) Status(vehicleID string, dr models.DateRange) (*AvailabilityStatus, error) {
	bookings, err := rc.Bookings.FindBlockingByVehicle(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("reconciler: booking lookup failed: %w", err)
	}

	bookedSet := make(map[string]bool)
	for _, b := range bookings {
		if !b.Blocking() {
			continue
		}
		for _, day := range b.Range().Days() {
			if dr.ContainsDay(day) {
				bookedSet[models.FormatDate(day)] = true
			}
		}
	}

	records, err := rc.Availability.FindOverlapping(vehicleID, dr.Start, dr.End)
	if err != nil {
		return nil, fmt.Errorf("reconciler: availability lookup failed: %w", err)
	}

	manualSet := make(map[string]bool)
	for _, rec := range models.LatestPerRange(records) {
		if rec.Available {
			continue
		}
		for _, day := range rec.Range().Days() {
			if dr.ContainsDay(day) {
				manualSet[models.FormatDate(day)] = true
			}
		}
	}

	status := &AvailabilityStatus{
		VehicleID: vehicleID,
		StartDate: models.FormatDate(dr.Start),
		EndDate:   models.FormatDate(dr.End),
	}

	allSet := make(map[string]bool)
	for _, day := range dr.Days() {
		key := models.FormatDate(day)
		if bookedSet[key] {
			status.BookedDates = append(status.BookedDates, key)
			allSet[key] = true
		}
		if manualSet[key] {
			status.ManualUnavailableDates = append(status.ManualUnavailableDates, key)
			allSet[key] = true
		}
		if allSet[key] {
			status.AllUnavailableDates = append(status.AllUnavailableDates, key)
		}
	}
	status.IsAvailable = len(allSet) == 0
	return status, nil
}

// todayMidnight returns the current day at midnight UTC.
func todayMidnight() time.Time {
	return models.Midnight(time.Now())
}
