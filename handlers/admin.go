package handlers

import (
	"fmt"

	bookingRepo "allride/database/repository/booking"
	"allride/models"
	"allride/utils"

	adminSvc "allride/services/admin"
	availabilitySvc "allride/services/availability"
	bookingSvc "allride/services/booking"
	userSvc "allride/services/user"
	vehicleSvc "allride/services/vehicle"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard: booking management, manual availability
// control, and aggregate statistics.
type AdminHandler struct {
	Admin        adminSvc.AdminService
	Bookings     bookingSvc.BookingService
	Availability availabilitySvc.AvailabilityService
	Vehicles     vehicleSvc.VehicleService
	Users        userSvc.UserService
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(admin adminSvc.AdminService, bookings bookingSvc.BookingService,
	availability availabilitySvc.AvailabilityService, vehicles vehicleSvc.VehicleService,
	users userSvc.UserService) *AdminHandler {
	return &AdminHandler{
		Admin:        admin,
		Bookings:     bookings,
		Availability: availability,
		Vehicles:     vehicles,
		Users:        users,
	}
}

// CheckRoleHandler reports whether the phone belongs to an admin user.
func (ah *AdminHandler) CheckRoleHandler(c *gin.Context) {
	user, err := ah.Users.GetUserByPhone(c.Param("phone"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{
		"isAdmin": user.Admin(),
		"user": gin.H{
			"phone": user.Phone,
			"name":  user.Name,
			"role":  user.Role,
			"email": user.Email,
		},
	})
}

// AllBookingsHandler returns one page of every booking with pagination info.
func (ah *AdminHandler) AllBookingsHandler(c *gin.Context) {
	page, size := pageParams(c)
	bookings, pagination, err := ah.Admin.AllBookings(page, size)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": bookings, "pagination": pagination})
}

// UpcomingBookingsHandler returns one page of future non-cancelled bookings.
func (ah *AdminHandler) UpcomingBookingsHandler(c *gin.Context) {
	page, size := pageParams(c)
	bookings, pagination, err := ah.Admin.UpcomingBookings(page, size)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": bookings, "pagination": pagination})
}

// CompletedBookingsHandler returns one page of completed bookings.
func (ah *AdminHandler) CompletedBookingsHandler(c *gin.Context) {
	page, size := pageParams(c)
	bookings, pagination, err := ah.Admin.CompletedBookings(page, size)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": bookings, "pagination": pagination})
}

type bookingUpdateRequest struct {
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	PickupTime     *string `json:"pickupTime"`
	DropoffTime    *string `json:"dropoffTime"`
	PickupLocation *string `json:"pickupLocation"`
	Status         *string `json:"status"`
}

// UpdateBookingHandler patches the editable fields of a booking. Absent
// fields are left untouched.
func (ah *AdminHandler) UpdateBookingHandler(c *gin.Context) {
	var req bookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}

	patch := bookingRepo.BookingPatch{
		PickupTime:     req.PickupTime,
		DropoffTime:    req.DropoffTime,
		PickupLocation: req.PickupLocation,
		Status:         req.Status,
	}
	if req.StartDate != nil {
		start, err := models.ParseDate(*req.StartDate)
		if err != nil {
			utils.RespondError(c, utils.NewValidationError("Invalid startDate. Use YYYY-MM-DD"))
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := models.ParseDate(*req.EndDate)
		if err != nil {
			utils.RespondError(c, utils.NewValidationError("Invalid endDate. Use YYYY-MM-DD"))
			return
		}
		patch.EndDate = &end
	}

	booking, err := ah.Bookings.UpdateBooking(c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Booking updated successfully", "booking": booking})
}

// CancelBookingHandler cancels a booking on behalf of an admin.
func (ah *AdminHandler) CancelBookingHandler(c *gin.Context) {
	booking, err := ah.Bookings.CancelBooking(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Booking cancelled successfully", "booking": booking})
}

type availabilityRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Available *bool  `json:"isAvailable"`
	Reason    string `json:"reason"`
}

func (r *availabilityRequest) dateRange() (models.DateRange, error) {
	start, err := models.ParseDate(r.StartDate)
	if err != nil {
		return models.DateRange{}, utils.NewValidationError("Invalid startDate. Use YYYY-MM-DD")
	}
	end, err := models.ParseDate(r.EndDate)
	if err != nil {
		return models.DateRange{}, utils.NewValidationError("Invalid endDate. Use YYYY-MM-DD")
	}
	dr, err := models.NewDateRange(start, end)
	if err != nil {
		return models.DateRange{}, utils.NewValidationError("startDate must not be after endDate")
	}
	return dr, nil
}

// SetAvailabilityHandler writes a manual record whose direction is picked by
// the isAvailable body field.
func (ah *AdminHandler) SetAvailabilityHandler(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	dr, err := req.dateRange()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	vehicleID := c.Param("id")
	var record *models.AvailabilityRecord
	if req.Available != nil && !*req.Available {
		record, err = ah.Availability.SetUnavailable(vehicleID, dr, req.Reason)
	} else {
		record, err = ah.Availability.SetAvailable(vehicleID, dr, req.Reason)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Vehicle availability updated successfully", "availability": record})
}

// ListAvailabilityHandler returns every manual record for a vehicle.
func (ah *AdminHandler) ListAvailabilityHandler(c *gin.Context) {
	records, err := ah.Availability.ListByVehicle(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": records})
}

// SetUnavailableHandler blocks a vehicle for a date range. Rejected with 409
// when bookings overlap the range.
func (ah *AdminHandler) SetUnavailableHandler(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	dr, err := req.dateRange()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	record, err := ah.Availability.SetUnavailable(c.Param("id"), dr, req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Vehicle marked as unavailable successfully", "availability": record})
}

// SetAvailableHandler records a manual available override for a date range.
func (ah *AdminHandler) SetAvailableHandler(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	dr, err := req.dateRange()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	record, err := ah.Availability.SetAvailable(c.Param("id"), dr, req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Vehicle marked as available successfully", "availability": record})
}

// RemoveAvailabilityHandler deletes one manual unavailable record by ID.
func (ah *AdminHandler) RemoveAvailabilityHandler(c *gin.Context) {
	if err := ah.Availability.RemoveUnavailablePeriod(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Unavailable period removed successfully"})
}

// AvailabilityStatusHandler returns the reconciled day-by-day availability
// picture for a vehicle over a date range.
func (ah *AdminHandler) AvailabilityStatusHandler(c *gin.Context) {
	status, err := ah.Bookings.AvailabilityStatus(c.Param("id"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": status})
}

// UnavailableDatesHandler returns the sorted list of blocked day strings for
// a vehicle over a date range. Calendar widgets use it to grey out days.
func (ah *AdminHandler) UnavailableDatesHandler(c *gin.Context) {
	start, err := models.ParseDate(c.Query("startDate"))
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid startDate. Use YYYY-MM-DD"))
		return
	}
	end, err := models.ParseDate(c.Query("endDate"))
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid endDate. Use YYYY-MM-DD"))
		return
	}
	dr, err := models.NewDateRange(start, end)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("startDate must not be after endDate"))
		return
	}
	dates, err := ah.Availability.UnavailableDates(c.Param("id"), dr)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": dates})
}

// ClearConflictsHandler removes superseded duplicate availability records for
// a vehicle, keeping the latest record per date range.
func (ah *AdminHandler) ClearConflictsHandler(c *gin.Context) {
	result, err := ah.Availability.ClearConflicts(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{
		"message":          fmt.Sprintf("Cleared %d conflicting availability records", result.RemovedCount),
		"remainingRecords": result.RemainingRecords,
	})
}

// PurposeOptionsHandler lists the selectable purposes for an existing vehicle.
func (ah *AdminHandler) PurposeOptionsHandler(c *gin.Context) {
	exists, err := ah.Vehicles.VehicleExists(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !exists {
		utils.RespondError(c, utils.NewNotFoundError("vehicle", c.Param("id")))
		return
	}
	utils.RespondOK(c, gin.H{"data": ah.Vehicles.PurposeOptions()})
}

// UpdatePurposeHandler changes a vehicle's listing purpose.
func (ah *AdminHandler) UpdatePurposeHandler(c *gin.Context) {
	var body struct {
		Purpose string `json:"purpose"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	vehicle, err := ah.Vehicles.UpdatePurpose(c.Param("id"), body.Purpose)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{
		"message": "Vehicle purpose updated successfully",
		"vehicle": gin.H{
			"id":      vehicle.ID,
			"name":    vehicle.Name,
			"purpose": vehicle.Purpose,
		},
	})
}

// StatsHandler returns the aggregate dashboard statistics.
func (ah *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := ah.Admin.DashboardStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": stats})
}
