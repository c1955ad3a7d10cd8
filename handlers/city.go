package handlers

import (
	"allride/models"
	citySvc "allride/services/city"
	"allride/utils"

	"github.com/gin-gonic/gin"
)

// CityHandler serves the serviceable-city endpoints.
type CityHandler struct {
	Service citySvc.CityService
}

// NewCityHandler creates a city handler.
func NewCityHandler(svc citySvc.CityService) *CityHandler {
	return &CityHandler{Service: svc}
}

// ListHandler returns every active city.
func (ch *CityHandler) ListHandler(c *gin.Context) {
	cities, err := ch.Service.ListActive()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": cities})
}

// GetHandler returns a single city by ID.
func (ch *CityHandler) GetHandler(c *gin.Context) {
	city, err := ch.Service.GetCityByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": city})
}

// CreateHandler adds a serviceable city. Returns 409 on a duplicate name.
func (ch *CityHandler) CreateHandler(c *gin.Context) {
	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	created, err := ch.Service.CreateCity(&city)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "City created successfully", "data": created})
}

// UpdateHandler renames or re-describes a city.
func (ch *CityHandler) UpdateHandler(c *gin.Context) {
	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	updated, err := ch.Service.UpdateCity(c.Param("id"), &city)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "City updated successfully", "data": updated})
}

// DeleteHandler soft-deletes a city.
func (ch *CityHandler) DeleteHandler(c *gin.Context) {
	if err := ch.Service.DeactivateCity(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "City deleted successfully"})
}
