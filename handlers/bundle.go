package handlers

import (
	"allride/models"

	adminSvc "allride/services/admin"
	availabilitySvc "allride/services/availability"
	bookingSvc "allride/services/booking"
	citySvc "allride/services/city"
	otpSvc "allride/services/otp"
	userSvc "allride/services/user"
	vehicleSvc "allride/services/vehicle"
)

// HandlerBundle groups every endpoint handler so routes can be registered
// from one place.
type HandlerBundle struct {
	Vehicles     *VehicleHandler
	RentVehicles *VehicleHandler
	SaleVehicles *VehicleHandler
	Bookings     *BookingHandler
	Cities       *CityHandler
	Auth         *AuthHandler
	Admin        *AdminHandler
}

// NewHandlerBundle wires every handler over the given services.
func NewHandlerBundle(
	vehicles vehicleSvc.VehicleService,
	bookings bookingSvc.BookingService,
	availability availabilitySvc.AvailabilityService,
	cities citySvc.CityService,
	users userSvc.UserService,
	otp otpSvc.OTPService,
	admin adminSvc.AdminService,
) *HandlerBundle {
	return &HandlerBundle{
		Vehicles:     NewVehicleHandler(vehicles),
		RentVehicles: NewPurposeVehicleHandler(vehicles, models.PurposeRent),
		SaleVehicles: NewPurposeVehicleHandler(vehicles, models.PurposeSale),
		Bookings:     NewBookingHandler(bookings),
		Cities:       NewCityHandler(cities),
		Auth:         NewAuthHandler(otp, users, bookings),
		Admin:        NewAdminHandler(admin, bookings, availability, vehicles, users),
	}
}
