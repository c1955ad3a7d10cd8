package availability

import (
	"sort"
	"sync"
	"testing"
	"time"

	bookingRepo "allride/database/repository/booking"
	"allride/models"
	"allride/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func rangeOf(start, end string) models.DateRange {
	dr, err := models.NewDateRange(day(start), day(end))
	if err != nil {
		panic(err)
	}
	return dr
}

// memAvailabilityRepo is an in-memory AvailabilityRepository.
type memAvailabilityRepo struct {
	mu      sync.Mutex
	records map[string]models.AvailabilityRecord
}

func newMemAvailabilityRepo() *memAvailabilityRepo {
	return &memAvailabilityRepo{records: make(map[string]models.AvailabilityRecord)}
}

func (m *memAvailabilityRepo) Create(rec *models.AvailabilityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.UpdatedAt = rec.CreatedAt
	m.records[rec.ID] = *rec
	return nil
}

func (m *memAvailabilityRepo) GetByID(id string) (*models.AvailabilityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memAvailabilityRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *memAvailabilityRepo) FindByVehicle(vehicleID string) ([]models.AvailabilityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AvailabilityRecord
	for _, rec := range m.records {
		if rec.VehicleID == vehicleID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (m *memAvailabilityRepo) FindOverlapping(vehicleID string, start, end time.Time) ([]models.AvailabilityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dr := models.DateRange{Start: models.Midnight(start), End: models.Midnight(end)}
	var out []models.AvailabilityRecord
	for _, rec := range m.records {
		if rec.VehicleID == vehicleID && rec.Range().Overlaps(dr) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memAvailabilityRepo) DeleteExactRange(vehicleID string, start, end time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	s, e := models.Midnight(start), models.Midnight(end)
	for id, rec := range m.records {
		if rec.VehicleID == vehicleID && rec.StartDate.Equal(s) && rec.EndDate.Equal(e) {
			delete(m.records, id)
			n++
		}
	}
	return n, nil
}

// stubBookingRepo satisfies BookingRepository; the availability writer only
// calls FindOverlapping.
type stubBookingRepo struct {
	bookingRepo.BookingRepository
	overlapping []models.Booking
}

func (s *stubBookingRepo) FindOverlapping(vehicleID string, start, end time.Time) ([]models.Booking, error) {
	dr := models.DateRange{Start: models.Midnight(start), End: models.Midnight(end)}
	var out []models.Booking
	for _, b := range s.overlapping {
		if b.VehicleID == vehicleID && b.Range().Overlaps(dr) {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestService(bookings ...models.Booking) (*DefaultAvailabilityService, *memAvailabilityRepo) {
	repo := newMemAvailabilityRepo()
	svc := NewAvailabilityService(repo, &stubBookingRepo{overlapping: bookings})
	return svc, repo
}

func TestSetUnavailable(t *testing.T) {
	svc, repo := newTestService()

	record, err := svc.SetUnavailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "maintenance")
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.Available)
	assert.Equal(t, "maintenance", record.Reason)

	stored, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestSetUnavailableRejectedWhenBookingsOverlap(t *testing.T) {
	svc, repo := newTestService(models.Booking{
		ID:        "bk-1",
		VehicleID: "veh-1",
		StartDate: day("2026-03-11"),
		EndDate:   day("2026-03-13"),
		Status:    models.BookingConfirmed,
	})

	_, err := svc.SetUnavailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "maintenance")
	var conflict *utils.ConflictError
	require.ErrorAs(t, err, &conflict)

	// Nothing was written.
	records, err := repo.FindByVehicle("veh-1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSetUnavailableReplacesExactRange(t *testing.T) {
	svc, repo := newTestService()

	first, err := svc.SetUnavailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "maintenance")
	require.NoError(t, err)
	second, err := svc.SetUnavailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "repaint")
	require.NoError(t, err)

	records, err := repo.FindByVehicle("veh-1")
	require.NoError(t, err)
	require.Len(t, records, 1, "repeating the same block must not accumulate records")
	assert.Equal(t, second.ID, records[0].ID)
	assert.NotEqual(t, first.ID, records[0].ID)
}

func TestSetUnavailableKeepsDifferentRanges(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.SetUnavailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "")
	require.NoError(t, err)
	// Overlapping but not identical: both survive, reconciled at read time.
	_, err = svc.SetUnavailable("veh-1", rangeOf("2026-03-11", "2026-03-13"), "")
	require.NoError(t, err)

	records, err := repo.FindByVehicle("veh-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSetAvailableIgnoresBookings(t *testing.T) {
	svc, _ := newTestService(models.Booking{
		ID:        "bk-1",
		VehicleID: "veh-1",
		StartDate: day("2026-03-10"),
		EndDate:   day("2026-03-12"),
		Status:    models.BookingConfirmed,
	})

	record, err := svc.SetAvailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "override")
	require.NoError(t, err)
	assert.True(t, record.Available)
}

func TestRemoveUnavailablePeriod(t *testing.T) {
	svc, repo := newTestService()
	record, err := svc.SetUnavailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveUnavailablePeriod(record.ID))
	stored, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRemoveUnavailablePeriodUnknownID(t *testing.T) {
	svc, _ := newTestService()

	err := svc.RemoveUnavailablePeriod("missing")
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRemoveUnavailablePeriodRejectsAvailableOverride(t *testing.T) {
	svc, _ := newTestService()
	record, err := svc.SetAvailable("veh-1", rangeOf("2026-03-10", "2026-03-12"), "")
	require.NoError(t, err)

	err = svc.RemoveUnavailablePeriod(record.ID)
	var validation *utils.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestUnavailableDates(t *testing.T) {
	svc, repo := newTestService()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(&models.AvailabilityRecord{
		ID: "rec-a", VehicleID: "veh-1",
		StartDate: day("2026-03-10"), EndDate: day("2026-03-11"),
		Available: false, CreatedAt: t0,
	}))
	// Superseded by a newer available record for the same range.
	require.NoError(t, repo.Create(&models.AvailabilityRecord{
		ID: "rec-b", VehicleID: "veh-1",
		StartDate: day("2026-03-10"), EndDate: day("2026-03-11"),
		Available: true, CreatedAt: t0.Add(time.Hour),
	}))
	require.NoError(t, repo.Create(&models.AvailabilityRecord{
		ID: "rec-c", VehicleID: "veh-1",
		StartDate: day("2026-03-14"), EndDate: day("2026-03-15"),
		Available: false, CreatedAt: t0,
	}))

	dates, err := svc.UnavailableDates("veh-1", rangeOf("2026-03-01", "2026-03-31"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-14", "2026-03-15"}, dates)
}
