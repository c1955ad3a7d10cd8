package city

import (
	cityRepo "allride/database/repository/city"
	"allride/models"
	"allride/utils"

	"github.com/google/uuid"
)

// CityService manages the serviceable-city list shown on the frontend.
type CityService interface {
	CreateCity(c *models.City) (*models.City, error)
	UpdateCity(id string, c *models.City) (*models.City, error)
	DeactivateCity(id string) error
	GetCityByID(id string) (*models.City, error)
	ListActive() ([]models.City, error)
	Count() (int64, error)
}

// DefaultCityService implements CityService.
type DefaultCityService struct {
	Repo cityRepo.CityRepository
}

// NewCityService wires the city service over its repository.
func NewCityService(repo cityRepo.CityRepository) *DefaultCityService {
	return &DefaultCityService{Repo: repo}
}

// CreateCity inserts a new serviceable city. City names are unique.
func (svc *DefaultCityService) CreateCity(c *models.City) (*models.City, error) {
	if c.Name == "" {
		return nil, utils.NewValidationError("city name is required")
	}
	exists, err := svc.Repo.ExistsByName(c.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewConflictError("City already exists")
	}
	c.ID = uuid.New().String()
	c.Active = true
	if err := svc.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCity renames or re-describes an existing city.
func (svc *DefaultCityService) UpdateCity(id string, details *models.City) (*models.City, error) {
	if details.Name == "" {
		return nil, utils.NewValidationError("city name is required")
	}
	city, err := svc.GetCityByID(id)
	if err != nil {
		return nil, err
	}
	if details.Name != city.Name {
		exists, err := svc.Repo.ExistsByName(details.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.NewConflictError("City already exists")
		}
	}
	city.Name = details.Name
	city.State = details.State
	city.ImageURL = details.ImageURL
	if err := svc.Repo.Update(city); err != nil {
		return nil, err
	}
	return city, nil
}

// DeactivateCity soft-deletes: the city stops appearing in listings but the
// document survives for vehicles already tagged with it.
func (svc *DefaultCityService) DeactivateCity(id string) error {
	city, err := svc.GetCityByID(id)
	if err != nil {
		return err
	}
	city.Active = false
	return svc.Repo.Update(city)
}

// GetCityByID fetches a city or reports NotFound.
func (svc *DefaultCityService) GetCityByID(id string) (*models.City, error) {
	city, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, utils.NewNotFoundError("city", id)
	}
	return city, nil
}

// ListActive returns all active cities.
func (svc *DefaultCityService) ListActive() ([]models.City, error) {
	return svc.Repo.ListActive()
}

// Count reports the number of active cities.
func (svc *DefaultCityService) Count() (int64, error) {
	return svc.Repo.Count()
}
