package availabilityRepo

import (
	"time"

	"allride/models"
)

// AvailabilityRepository defines data access for manual availability records.
// The store allows duplicate and overlapping ranges per vehicle; contradictory
// writes are resolved at read time by the reconciler, not prevented here.
type AvailabilityRepository interface {
	Create(record *models.AvailabilityRecord) error
	GetByID(id string) (*models.AvailabilityRecord, error)
	Delete(id string) error

	// FindByVehicle returns every record for the vehicle, most recent start
	// date first.
	FindByVehicle(vehicleID string) ([]models.AvailabilityRecord, error)

	// FindOverlapping returns records for the vehicle whose inclusive range
	// intersects [start, end].
	FindOverlapping(vehicleID string, start, end time.Time) ([]models.AvailabilityRecord, error)

	// DeleteExactRange removes records covering exactly [start, end] for the
	// vehicle and returns how many were removed.
	DeleteExactRange(vehicleID string, start, end time.Time) (int64, error)
}
