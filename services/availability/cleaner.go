package availability

import (
	"allride/models"
	"allride/utils"

	"go.uber.org/zap"
)

// ClearResult reports the outcome of a conflict-cleaning pass.
type ClearResult struct {
	RemovedCount     int `json:"removedCount"`
	RemainingRecords int `json:"remainingRecords"`
}

// ClearConflicts prunes duplicate manual records for a vehicle: records are
// grouped by exact (startDate, endDate) pair and only the most recently
// created record in each group survives. This is the same tie-break the
// reconciler applies at read time, run as a maintenance operation so the
// store does not accumulate unbounded duplicate rows.
//
// Overlapping-but-not-identical ranges are left untouched; the cleaner never
// merges or splits ranges.
func (svc *DefaultAvailabilityService) ClearConflicts(vehicleID string) (*ClearResult, error) {
	records, err := svc.Repo.FindByVehicle(vehicleID)
	if err != nil {
		return nil, err
	}

	latest := models.LatestPerRange(records)

	var removed int
	for _, rec := range records {
		winner := latest[rec.RangeKey()]
		if rec.ID == winner.ID {
			continue
		}
		if err := svc.Repo.Delete(rec.ID); err != nil {
			return nil, err
		}
		removed++
	}

	utils.GetLogger().Info("cleared conflicting availability records",
		zap.String("vehicleId", vehicleID),
		zap.Int("removed", removed),
		zap.Int("remaining", len(latest)))

	return &ClearResult{RemovedCount: removed, RemainingRecords: len(latest)}, nil
}
