package availability

import (
	"testing"
	"time"

	"allride/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecord(t *testing.T, repo *memAvailabilityRepo, id, start, end string, available bool, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&models.AvailabilityRecord{
		ID:        id,
		VehicleID: "veh-1",
		StartDate: day(start),
		EndDate:   day(end),
		Available: available,
		CreatedAt: createdAt,
	}))
}

func TestClearConflictsRemovesSuperseded(t *testing.T) {
	svc, repo := newTestService()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Three records for the same exact range; only the newest survives.
	seedRecord(t, repo, "rec-a", "2026-03-10", "2026-03-12", false, t0)
	seedRecord(t, repo, "rec-b", "2026-03-10", "2026-03-12", true, t0.Add(time.Hour))
	seedRecord(t, repo, "rec-c", "2026-03-10", "2026-03-12", false, t0.Add(2*time.Hour))
	// A different range is untouched.
	seedRecord(t, repo, "rec-d", "2026-03-20", "2026-03-22", false, t0)

	result, err := svc.ClearConflicts("veh-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.RemovedCount)
	assert.Equal(t, 2, result.RemainingRecords)

	remaining, err := repo.FindByVehicle("veh-1")
	require.NoError(t, err)
	ids := make([]string, 0, len(remaining))
	for _, rec := range remaining {
		ids = append(ids, rec.ID)
	}
	assert.ElementsMatch(t, []string{"rec-c", "rec-d"}, ids)
}

func TestClearConflictsLeavesOverlappingRangesAlone(t *testing.T) {
	svc, repo := newTestService()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Overlapping but not identical ranges are distinct decisions.
	seedRecord(t, repo, "rec-a", "2026-03-10", "2026-03-12", false, t0)
	seedRecord(t, repo, "rec-b", "2026-03-11", "2026-03-13", false, t0.Add(time.Hour))

	result, err := svc.ClearConflicts("veh-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.RemovedCount)
	assert.Equal(t, 2, result.RemainingRecords)
}

func TestClearConflictsCreatedAtTie(t *testing.T) {
	svc, repo := newTestService()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedRecord(t, repo, "rec-a", "2026-03-10", "2026-03-12", false, t0)
	seedRecord(t, repo, "rec-z", "2026-03-10", "2026-03-12", true, t0)

	result, err := svc.ClearConflicts("veh-1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.RemovedCount)

	remaining, err := repo.FindByVehicle("veh-1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "rec-z", remaining[0].ID)
}

func TestClearConflictsEmpty(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.ClearConflicts("veh-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.RemovedCount)
	assert.Equal(t, 0, result.RemainingRecords)
}

func TestClearConflictsIdempotent(t *testing.T) {
	svc, repo := newTestService()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedRecord(t, repo, "rec-a", "2026-03-10", "2026-03-12", false, t0)
	seedRecord(t, repo, "rec-b", "2026-03-10", "2026-03-12", true, t0.Add(time.Hour))

	first, err := svc.ClearConflicts("veh-1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.RemovedCount)

	second, err := svc.ClearConflicts("veh-1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.RemovedCount)
	assert.Equal(t, 1, second.RemainingRecords)
}
