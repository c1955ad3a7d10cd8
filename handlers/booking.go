package handlers

import (
	"strconv"

	bookingSvc "allride/services/booking"
	"allride/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the customer-facing booking endpoints.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	return page, size
}

// CreateHandler books a vehicle for a date range. Returns 409 when the
// vehicle is not available for the requested dates.
func (bh *BookingHandler) CreateHandler(c *gin.Context) {
	var input bookingSvc.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	booking, err := bh.Service.CreateBooking(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Booking created successfully", "booking": booking})
}

// ListHandler returns one page of bookings, newest first.
func (bh *BookingHandler) ListHandler(c *gin.Context) {
	page, size := pageParams(c)
	bookings, err := bh.Service.GetAllBookings(page, size)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": bookings})
}

// GetHandler returns a single booking by ID.
func (bh *BookingHandler) GetHandler(c *gin.Context) {
	booking, err := bh.Service.GetBookingByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"booking": booking})
}

// ByCustomerHandler returns all bookings made with a phone number.
func (bh *BookingHandler) ByCustomerHandler(c *gin.Context) {
	bookings, err := bh.Service.GetBookingsByCustomerPhone(c.Param("phone"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"bookings": bookings})
}

// ByVehicleHandler returns the confirmed and active bookings for a vehicle,
// used by the frontend calendar to block dates.
func (bh *BookingHandler) ByVehicleHandler(c *gin.Context) {
	bookings, err := bh.Service.GetBlockingBookingsByVehicle(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"bookings": bookings})
}

// UpdateStatusHandler moves a booking through its lifecycle.
func (bh *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	booking, err := bh.Service.UpdateStatus(c.Param("id"), body.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Booking status updated successfully", "booking": booking})
}

// CancelHandler cancels a booking, freeing its dates.
func (bh *BookingHandler) CancelHandler(c *gin.Context) {
	booking, err := bh.Service.CancelBooking(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Booking cancelled successfully", "booking": booking})
}

// AvailabilityHandler answers whether a vehicle is available for a date range.
// Query parameters: vehicleId, startDate, endDate (YYYY-MM-DD).
func (bh *BookingHandler) AvailabilityHandler(c *gin.Context) {
	vehicleID := c.Query("vehicleId")
	if vehicleID == "" {
		utils.RespondError(c, utils.NewValidationError("vehicleId is required"))
		return
	}
	available, err := bh.Service.IsAvailable(vehicleID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"isAvailable": available})
}

// StatsHandler returns per-status booking counts and completed revenue.
func (bh *BookingHandler) StatsHandler(c *gin.Context) {
	stats, err := bh.Service.Stats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": stats})
}
