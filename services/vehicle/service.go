package vehicle

import (
	vehicleRepo "allride/database/repository/vehicle"
	"allride/models"
	"allride/utils"

	"github.com/google/uuid"
)

const defaultImageURL = "/images/default-vehicle.jpg"

// VehicleService manages the vehicle catalog.
type VehicleService interface {
	CreateVehicle(v *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(id string, v *models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(id string) error
	GetVehicleByID(id string) (*models.Vehicle, error)
	VehicleExists(id string) (bool, error)
	ImageURL(id string) string

	ListVehicles(city, vehicleType string) ([]models.Vehicle, error)
	ListForPurpose(purpose, city, vehicleType string) ([]models.Vehicle, error)
	Cities() ([]string, error)
	CitiesForPurpose(purpose string) ([]string, error)

	Counts(city, vehicleType string) (int64, error)
	CountsForPurpose(purpose, city, vehicleType string) (int64, error)
	ComprehensiveStats() (map[string]interface{}, error)

	UpdatePurpose(id, purpose string) (*models.Vehicle, error)
	PurposeOptions() []map[string]string
}

// DefaultVehicleService implements VehicleService.
type DefaultVehicleService struct {
	Repo vehicleRepo.VehicleRepository
}

// NewVehicleService wires the catalog service over its repository.
func NewVehicleService(repo vehicleRepo.VehicleRepository) *DefaultVehicleService {
	return &DefaultVehicleService{Repo: repo}
}

func validateVehicle(v *models.Vehicle) error {
	if v.Name == "" {
		return utils.NewValidationError("vehicle name is required")
	}
	if v.City == "" {
		return utils.NewValidationError("vehicle city is required")
	}
	if v.Type == "" {
		return utils.NewValidationError("vehicle type is required")
	}
	if v.Purpose != "" && !models.ValidPurpose(v.Purpose) {
		return utils.NewValidationError("Invalid purpose. Must be 'rent', 'sale', or 'both'")
	}
	return nil
}

// CreateVehicle inserts a new catalog entry. Purpose defaults to rent; a
// sale-listed vehicle without a price gets a zero placeholder the frontend
// can render.
func (svc *DefaultVehicleService) CreateVehicle(v *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	if v.Purpose == "" {
		v.Purpose = models.PurposeRent
	}
	if v.SalePrice == "" && (v.Purpose == models.PurposeSale || v.Purpose == models.PurposeBoth) {
		v.SalePrice = "₹0"
	}
	v.ID = uuid.New().String()
	v.Available = true
	if v.Status == "" {
		v.Status = "available"
	}
	if err := svc.Repo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVehicle overwrites the mutable fields of an existing vehicle.
func (svc *DefaultVehicleService) UpdateVehicle(id string, details *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(details); err != nil {
		return nil, err
	}
	vehicle, err := svc.GetVehicleByID(id)
	if err != nil {
		return nil, err
	}

	vehicle.Name = details.Name
	vehicle.Type = details.Type
	vehicle.RentPrice = details.RentPrice
	vehicle.SalePrice = details.SalePrice
	vehicle.Features = details.Features
	vehicle.Rating = details.Rating
	vehicle.City = details.City
	vehicle.ImageURL = details.ImageURL
	vehicle.Description = details.Description
	vehicle.Available = details.Available
	vehicle.UnderMaintenance = details.UnderMaintenance
	vehicle.Capacity = details.Capacity
	vehicle.FuelType = details.FuelType
	vehicle.Transmission = details.Transmission
	vehicle.Purpose = details.Purpose

	if err := svc.Repo.Update(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle soft-deletes: the vehicle is hidden from the catalog but the
// document survives for historical bookings.
func (svc *DefaultVehicleService) DeleteVehicle(id string) error {
	vehicle, err := svc.GetVehicleByID(id)
	if err != nil {
		return err
	}
	vehicle.Available = false
	return svc.Repo.Update(vehicle)
}

// GetVehicleByID fetches a vehicle or reports NotFound.
func (svc *DefaultVehicleService) GetVehicleByID(id string) (*models.Vehicle, error) {
	vehicle, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, utils.NewNotFoundError("vehicle", id)
	}
	return vehicle, nil
}

// VehicleExists reports whether a vehicle exists.
func (svc *DefaultVehicleService) VehicleExists(id string) (bool, error) {
	return svc.Repo.Exists(id)
}

// ImageURL returns the vehicle's image, falling back to the default placeholder.
func (svc *DefaultVehicleService) ImageURL(id string) string {
	vehicle, err := svc.Repo.GetByID(id)
	if err != nil || vehicle == nil || vehicle.ImageURL == "" {
		return defaultImageURL
	}
	return vehicle.ImageURL
}

// ListVehicles retrieves catalog vehicles filtered by optional city and type.
func (svc *DefaultVehicleService) ListVehicles(city, vehicleType string) ([]models.Vehicle, error) {
	return svc.Repo.ListAvailable(city, vehicleType)
}

// ListForPurpose retrieves vehicles available for the given purpose.
func (svc *DefaultVehicleService) ListForPurpose(purpose, city, vehicleType string) ([]models.Vehicle, error) {
	if !models.ValidPurpose(purpose) || purpose == models.PurposeBoth {
		return nil, utils.NewValidationError("purpose must be 'rent' or 'sale'")
	}
	return svc.Repo.ListForPurpose(purpose, city, vehicleType)
}

// Cities returns the cities with at least one available vehicle.
func (svc *DefaultVehicleService) Cities() ([]string, error) {
	return svc.Repo.DistinctCities()
}

// CitiesForPurpose returns the cities with at least one available vehicle for
// the given purpose.
func (svc *DefaultVehicleService) CitiesForPurpose(purpose string) ([]string, error) {
	if !models.ValidPurpose(purpose) || purpose == models.PurposeBoth {
		return nil, utils.NewValidationError("purpose must be 'rent' or 'sale'")
	}
	return svc.Repo.DistinctCitiesForPurpose(purpose)
}

// Counts counts available vehicles filtered by optional city and type.
func (svc *DefaultVehicleService) Counts(city, vehicleType string) (int64, error) {
	return svc.Repo.CountAvailable(city, vehicleType)
}

// CountsForPurpose counts available vehicles for the given purpose.
func (svc *DefaultVehicleService) CountsForPurpose(purpose, city, vehicleType string) (int64, error) {
	if !models.ValidPurpose(purpose) || purpose == models.PurposeBoth {
		return 0, utils.NewValidationError("purpose must be 'rent' or 'sale'")
	}
	return svc.Repo.CountForPurpose(purpose, city, vehicleType)
}

// ComprehensiveStats aggregates catalog counts for the stats endpoint.
func (svc *DefaultVehicleService) ComprehensiveStats() (map[string]interface{}, error) {
	total, err := svc.Repo.CountAll()
	if err != nil {
		return nil, err
	}
	available, err := svc.Repo.CountAvailable("", "")
	if err != nil {
		return nil, err
	}
	forRent, err := svc.Repo.CountForPurpose(models.PurposeRent, "", "")
	if err != nil {
		return nil, err
	}
	forSale, err := svc.Repo.CountForPurpose(models.PurposeSale, "", "")
	if err != nil {
		return nil, err
	}
	maintenance, err := svc.Repo.CountUnderMaintenance()
	if err != nil {
		return nil, err
	}
	cars, err := svc.Repo.CountAvailable("", "Car")
	if err != nil {
		return nil, err
	}
	bikes, err := svc.Repo.CountAvailable("", "Bike")
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"totalVehicles":       total,
		"availableVehicles":   available,
		"vehiclesForRent":     forRent,
		"vehiclesForSale":     forSale,
		"maintenanceVehicles": maintenance,
		"cars":                cars,
		"bikes":               bikes,
	}, nil
}

// UpdatePurpose changes only the purpose of a vehicle, validated against the
// closed set.
func (svc *DefaultVehicleService) UpdatePurpose(id, purpose string) (*models.Vehicle, error) {
	if !models.ValidPurpose(purpose) {
		return nil, utils.NewValidationError("Invalid purpose. Must be 'rent', 'sale', or 'both'")
	}
	vehicle, err := svc.GetVehicleByID(id)
	if err != nil {
		return nil, err
	}
	vehicle.Purpose = purpose
	if err := svc.Repo.Update(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// PurposeOptions lists the selectable purposes for the admin UI.
func (svc *DefaultVehicleService) PurposeOptions() []map[string]string {
	return []map[string]string{
		{"value": models.PurposeRent, "label": "For Rent"},
		{"value": models.PurposeSale, "label": "For Sale"},
		{"value": models.PurposeBoth, "label": "Rent & Sale"},
	}
}
