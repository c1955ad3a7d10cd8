package vehicleRepo

import "allride/models"

// VehicleRepository defines data access for the vehicle catalog.
type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	GetByID(id string) (*models.Vehicle, error)
	Exists(id string) (bool, error)

	// Listings. City and vehicleType filters are optional ("" matches all);
	// purpose filters include dual-purpose ("both") vehicles.
	ListAvailable(city, vehicleType string) ([]models.Vehicle, error)
	ListForPurpose(purpose, city, vehicleType string) ([]models.Vehicle, error)
	DistinctCities() ([]string, error)
	DistinctCitiesForPurpose(purpose string) ([]string, error)

	// Counts for the stats endpoints.
	CountAvailable(city, vehicleType string) (int64, error)
	CountForPurpose(purpose, city, vehicleType string) (int64, error)
	CountAll() (int64, error)
	CountUnderMaintenance() (int64, error)
}
