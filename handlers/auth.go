package handlers

import (
	"allride/models"
	"allride/utils"

	bookingSvc "allride/services/booking"
	otpSvc "allride/services/otp"
	userSvc "allride/services/user"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves phone-based OTP login and the customer profile endpoints.
type AuthHandler struct {
	OTP      otpSvc.OTPService
	Users    userSvc.UserService
	Bookings bookingSvc.BookingService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(otp otpSvc.OTPService, users userSvc.UserService, bookings bookingSvc.BookingService) *AuthHandler {
	return &AuthHandler{OTP: otp, Users: users, Bookings: bookings}
}

// phoneFrom accepts both field names the frontend has used for the number.
func phoneFrom(body map[string]string) string {
	if p := body["phoneNumber"]; p != "" {
		return p
	}
	return body["phone"]
}

// SendOTPHandler generates and delivers a login code.
func (ah *AuthHandler) SendOTPHandler(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	phone := phoneFrom(body)
	if phone == "" {
		utils.RespondError(c, utils.NewValidationError("Phone number is required"))
		return
	}
	if !userSvc.ValidPhone(phone) {
		utils.RespondError(c, utils.NewValidationError("Please enter a valid 10-digit phone number starting with 6-9"))
		return
	}
	message, err := ah.OTP.SendOTP(phone)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": message})
}

// VerifyOTPHandler checks a submitted login code.
func (ah *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	phone := phoneFrom(body)
	if phone == "" {
		utils.RespondError(c, utils.NewValidationError("Phone number is required"))
		return
	}
	code := body["otp"]
	if code == "" {
		utils.RespondError(c, utils.NewValidationError("OTP is required"))
		return
	}
	if err := ah.OTP.VerifyOTP(phone, code); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "OTP verified successfully"})
}

// CheckUserHandler reports whether a phone number is registered, returning
// the user document when it is.
func (ah *AuthHandler) CheckUserHandler(c *gin.Context) {
	phone := c.Param("phone")
	exists, err := ah.Users.CheckUserExists(phone)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var user *models.User
	if exists {
		user, err = ah.Users.GetUserByPhone(phone)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
	}
	utils.RespondOK(c, gin.H{"exists": exists, "user": user})
}

// CreateUserHandler registers a new customer after OTP verification.
func (ah *AuthHandler) CreateUserHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	created, err := ah.Users.RegisterUser(&user)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "User created successfully", "user": created})
}

// UpdateProfileHandler changes the mutable profile fields for the phone in
// the request body.
func (ah *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request: "+err.Error()))
		return
	}
	if user.Phone == "" {
		utils.RespondError(c, utils.NewValidationError("Phone number is required"))
		return
	}
	updated, err := ah.Users.UpdateProfile(user.Phone, &user)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Profile updated successfully", "user": updated})
}

// ProfileHandler returns the user with their booking history and counts.
func (ah *AuthHandler) ProfileHandler(c *gin.Context) {
	profile, err := ah.Users.GetProfile(c.Param("phone"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"profile": profile})
}

// UserBookingsHandler returns all bookings made with a phone number.
func (ah *AuthHandler) UserBookingsHandler(c *gin.Context) {
	bookings, err := ah.Bookings.GetBookingsByCustomerPhone(c.Param("phone"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"bookings": bookings})
}
