package handlers

import (
	"allride/models"
	"allride/utils"

	vehicleSvc "allride/services/vehicle"

	"github.com/gin-gonic/gin"
)

// VehicleHandler serves the public vehicle catalog.
type VehicleHandler struct {
	Service vehicleSvc.VehicleService

	// Purpose scopes the handler to rent-only or sale-only listings when
	// mounted under /api/rent-vehicles or /api/sale-vehicles. Empty means
	// the full catalog.
	Purpose string
}

// NewVehicleHandler creates a catalog handler for the full catalog.
func NewVehicleHandler(svc vehicleSvc.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: svc}
}

// NewPurposeVehicleHandler creates a catalog handler scoped to one purpose.
func NewPurposeVehicleHandler(svc vehicleSvc.VehicleService, purpose string) *VehicleHandler {
	return &VehicleHandler{Service: svc, Purpose: purpose}
}

func (vh *VehicleHandler) list(city, vehicleType string) ([]models.Vehicle, error) {
	if vh.Purpose != "" {
		return vh.Service.ListForPurpose(vh.Purpose, city, vehicleType)
	}
	return vh.Service.ListVehicles(city, vehicleType)
}

// ListHandler returns catalog vehicles, optionally filtered by the city and
// type query parameters.
func (vh *VehicleHandler) ListHandler(c *gin.Context) {
	vehicles, err := vh.list(c.Query("city"), c.Query("type"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": vehicles})
}

// ListByCityHandler returns vehicles for one city (path variant of the filter).
func (vh *VehicleHandler) ListByCityHandler(c *gin.Context) {
	vehicles, err := vh.list(c.Param("city"), "")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": vehicles})
}

// ListByTypeHandler returns vehicles of one type.
func (vh *VehicleHandler) ListByTypeHandler(c *gin.Context) {
	vehicles, err := vh.list("", c.Param("type"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": vehicles})
}

// CitiesHandler returns cities with at least one matching vehicle.
func (vh *VehicleHandler) CitiesHandler(c *gin.Context) {
	var (
		cities []string
		err    error
	)
	if vh.Purpose != "" {
		cities, err = vh.Service.CitiesForPurpose(vh.Purpose)
	} else {
		cities, err = vh.Service.Cities()
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": cities})
}

// CountsHandler returns the matching vehicle count for the optional city and
// type filters.
func (vh *VehicleHandler) CountsHandler(c *gin.Context) {
	city, vehicleType := c.Query("city"), c.Query("type")
	var (
		count int64
		err   error
	)
	if vh.Purpose != "" {
		count, err = vh.Service.CountsForPurpose(vh.Purpose, city, vehicleType)
	} else {
		count, err = vh.Service.Counts(city, vehicleType)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"count": count})
}

// GetHandler returns a single vehicle by ID.
func (vh *VehicleHandler) GetHandler(c *gin.Context) {
	vehicle, err := vh.Service.GetVehicleByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": vehicle})
}

// CreateHandler inserts a new catalog vehicle.
func (vh *VehicleHandler) CreateHandler(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	created, err := vh.Service.CreateVehicle(&vehicle)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Vehicle created successfully", "data": created})
}

// UpdateHandler overwrites an existing vehicle.
func (vh *VehicleHandler) UpdateHandler(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	updated, err := vh.Service.UpdateVehicle(c.Param("id"), &vehicle)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Vehicle updated successfully", "data": updated})
}

// DeleteHandler soft-deletes a vehicle from the catalog.
func (vh *VehicleHandler) DeleteHandler(c *gin.Context) {
	if err := vh.Service.DeleteVehicle(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Vehicle deleted successfully"})
}

// StatsHandler returns comprehensive catalog statistics.
func (vh *VehicleHandler) StatsHandler(c *gin.Context) {
	stats, err := vh.Service.ComprehensiveStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": stats})
}

// AvailableForPurposeHandler reports whether the vehicle is listed for the
// given purpose.
func (vh *VehicleHandler) AvailableForPurposeHandler(c *gin.Context) {
	purpose := c.Param("purpose")
	if !models.ValidPurpose(purpose) {
		utils.RespondError(c, utils.NewValidationError("purpose must be 'rent' or 'sale'"))
		return
	}
	vehicle, err := vh.Service.GetVehicleByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	available := false
	switch purpose {
	case models.PurposeRent:
		available = vehicle.ForRent()
	case models.PurposeSale:
		available = vehicle.ForSale()
	case models.PurposeBoth:
		available = vehicle.ForRent() && vehicle.ForSale()
	}
	utils.RespondOK(c, gin.H{"vehicleId": vehicle.ID, "purpose": purpose, "available": available})
}

// PricesHandler returns the rent and sale price strings for a vehicle.
func (vh *VehicleHandler) PricesHandler(c *gin.Context) {
	vehicle, err := vh.Service.GetVehicleByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": gin.H{
		"vehicleId": vehicle.ID,
		"purpose":   vehicle.Purpose,
		"rentPrice": vehicle.RentPrice,
		"salePrice": vehicle.SalePrice,
	}})
}
