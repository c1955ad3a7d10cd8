package models

import "time"

// AvailabilityRecord is an admin-authored override blocking (Available=false)
// or unblocking (Available=true) a vehicle for an inclusive date range,
// independent of bookings. Records are never mutated in place: a correction is
// a new record, and overlapping or duplicate ranges for the same vehicle are
// resolved at read time by recency of CreatedAt.
type AvailabilityRecord struct {
	ID        string    `bson:"id" json:"id"`
	VehicleID string    `bson:"vehicle_id" json:"vehicleId"`
	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date" json:"endDate"`
	Available bool      `bson:"is_available" json:"available"`
	Reason    string    `bson:"reason" json:"reason"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Range returns the record's inclusive date range.
func (a *AvailabilityRecord) Range() DateRange {
	return DateRange{Start: Midnight(a.StartDate), End: Midnight(a.EndDate)}
}

// RangeKey identifies the exact (startDate, endDate) pair for duplicate
// grouping in the reconciler and the conflict cleaner.
func (a *AvailabilityRecord) RangeKey() string {
	return FormatDate(a.StartDate) + "_" + FormatDate(a.EndDate)
}

// LatestPerRange groups records by exact (startDate, endDate) key and keeps
// only the winning record per group. This is the shared tie-break used by the
// availability reconciler and the conflict cleaner: the latest admin decision
// for a range is authoritative, without requiring in-place mutation.
func LatestPerRange(records []AvailabilityRecord) map[string]AvailabilityRecord {
	latest := make(map[string]AvailabilityRecord, len(records))
	for _, rec := range records {
		key := rec.RangeKey()
		existing, ok := latest[key]
		if !ok || rec.Supersedes(&existing) {
			latest[key] = rec
		}
	}
	return latest
}

// Supersedes reports whether this record wins over other when both cover the
// same exact range: later CreatedAt wins, with ties broken deterministically
// by the greater record ID.
func (a *AvailabilityRecord) Supersedes(other *AvailabilityRecord) bool {
	if a.CreatedAt.After(other.CreatedAt) {
		return true
	}
	if a.CreatedAt.Equal(other.CreatedAt) {
		return a.ID > other.ID
	}
	return false
}
