package booking

import "sync"

// vehicleLocks serializes the check-then-insert sequence of booking creation
// per vehicle ID. Without it, two concurrent requests for overlapping dates
// on the same vehicle could both pass the availability check before either
// commits, producing a double-booking.
type vehicleLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newVehicleLocks() *vehicleLocks {
	return &vehicleLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a vehicle, creating one if it doesn't exist.
func (v *vehicleLocks) get(vehicleID string) *sync.Mutex {
	v.mu.Lock()
	defer v.mu.Unlock()

	lock, exists := v.locks[vehicleID]
	if !exists {
		lock = &sync.Mutex{}
		v.locks[vehicleID] = lock
	}
	return lock
}
