package booking

import (
	"sort"
	"sync"
	"time"

	bookingRepo "allride/database/repository/booking"
	"allride/models"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.BookingDate = b.CreatedAt
	b.UpdatedAt = now
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) Update(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.UpdatedAt = time.Now()
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func blocking(status string) bool {
	return status == models.BookingConfirmed || status == models.BookingActive
}

func (f *fakeBookingRepo) FindOverlapping(vehicleID string, start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dr := models.DateRange{Start: models.Midnight(start), End: models.Midnight(end)}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.VehicleID == vehicleID && blocking(b.Status) && b.Range().Overlaps(dr) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindBlockingByVehicle(vehicleID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.VehicleID == vehicleID && blocking(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByCustomerPhone(phone string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerPhone == phone {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) all() []models.Booking {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func page(list []models.Booking, page, size int) []models.Booking {
	start := page * size
	if start >= len(list) {
		return nil
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

func (f *fakeBookingRepo) FindAll(p, size int) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return page(f.all(), p, size), nil
}

func (f *fakeBookingRepo) FindUpcoming(today time.Time, p, size int) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.all() {
		if !b.StartDate.Before(today) && b.Status != models.BookingCancelled {
			out = append(out, b)
		}
	}
	return page(out, p, size), nil
}

func (f *fakeBookingRepo) FindByStatus(status string, p, size int) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.all() {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return page(out, p, size), nil
}

func (f *fakeBookingRepo) CountAll() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountUpcoming(today time.Time) (int64, error) {
	list, _ := f.FindUpcoming(today, 0, len(f.bookings)+1)
	return int64(len(list)), nil
}

func (f *fakeBookingRepo) CountByStatus(status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) Stats() (*bookingRepo.BookingStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &bookingRepo.BookingStats{}
	for _, b := range f.bookings {
		stats.Total++
		switch b.Status {
		case models.BookingConfirmed:
			stats.Confirmed++
		case models.BookingActive:
			stats.Active++
		case models.BookingCompleted:
			stats.Completed++
			stats.TotalRevenue += b.TotalAmount
		case models.BookingCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// fakeAvailabilityRepo is an in-memory AvailabilityRepository.
type fakeAvailabilityRepo struct {
	mu      sync.Mutex
	records map[string]models.AvailabilityRecord
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{records: make(map[string]models.AvailabilityRecord)}
}

func (f *fakeAvailabilityRepo) Create(rec *models.AvailabilityRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.UpdatedAt = rec.CreatedAt
	f.records[rec.ID] = *rec
	return nil
}

func (f *fakeAvailabilityRepo) GetByID(id string) (*models.AvailabilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAvailabilityRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	return nil
}

func (f *fakeAvailabilityRepo) FindByVehicle(vehicleID string) ([]models.AvailabilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityRecord
	for _, rec := range f.records {
		if rec.VehicleID == vehicleID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (f *fakeAvailabilityRepo) FindOverlapping(vehicleID string, start, end time.Time) ([]models.AvailabilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dr := models.DateRange{Start: models.Midnight(start), End: models.Midnight(end)}
	var out []models.AvailabilityRecord
	for _, rec := range f.records {
		if rec.VehicleID == vehicleID && rec.Range().Overlaps(dr) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) DeleteExactRange(vehicleID string, start, end time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	s, e := models.Midnight(start), models.Midnight(end)
	for id, rec := range f.records {
		if rec.VehicleID == vehicleID && rec.StartDate.Equal(s) && rec.EndDate.Equal(e) {
			delete(f.records, id)
			n++
		}
	}
	return n, nil
}

// fakeVehicleRepo is an in-memory VehicleRepository covering what the booking
// service touches.
type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[string]models.Vehicle
}

func newFakeVehicleRepo(vehicles ...models.Vehicle) *fakeVehicleRepo {
	f := &fakeVehicleRepo{vehicles: make(map[string]models.Vehicle)}
	for _, v := range vehicles {
		f.vehicles[v.ID] = v
	}
	return f
}

func (f *fakeVehicleRepo) Create(v *models.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleRepo) Update(v *models.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeVehicleRepo) Exists(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.vehicles[id]
	return ok, nil
}

func (f *fakeVehicleRepo) ListAvailable(city, vehicleType string) ([]models.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Vehicle
	for _, v := range f.vehicles {
		if !v.Available {
			continue
		}
		if city != "" && v.City != city {
			continue
		}
		if vehicleType != "" && v.Type != vehicleType {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVehicleRepo) ListForPurpose(purpose, city, vehicleType string) ([]models.Vehicle, error) {
	list, _ := f.ListAvailable(city, vehicleType)
	var out []models.Vehicle
	for _, v := range list {
		if v.Purpose == purpose || v.Purpose == models.PurposeBoth {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVehicleRepo) DistinctCities() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, v := range f.vehicles {
		if v.Available && !seen[v.City] {
			seen[v.City] = true
			out = append(out, v.City)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeVehicleRepo) DistinctCitiesForPurpose(purpose string) ([]string, error) {
	list, _ := f.ListForPurpose(purpose, "", "")
	seen := make(map[string]bool)
	var out []string
	for _, v := range list {
		if !seen[v.City] {
			seen[v.City] = true
			out = append(out, v.City)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeVehicleRepo) CountAvailable(city, vehicleType string) (int64, error) {
	list, _ := f.ListAvailable(city, vehicleType)
	return int64(len(list)), nil
}

func (f *fakeVehicleRepo) CountForPurpose(purpose, city, vehicleType string) (int64, error) {
	list, _ := f.ListForPurpose(purpose, city, vehicleType)
	return int64(len(list)), nil
}

func (f *fakeVehicleRepo) CountAll() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.vehicles)), nil
}

func (f *fakeVehicleRepo) CountUnderMaintenance() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, v := range f.vehicles {
		if v.UnderMaintenance {
			n++
		}
	}
	return n, nil
}
