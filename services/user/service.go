package user

import (
	"regexp"
	"time"

	bookingRepo "allride/database/repository/booking"
	userRepo "allride/database/repository/user"
	"allride/models"
	"allride/utils"

	"github.com/google/uuid"
)

// Indian mobile numbers: 10 digits starting 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// Profile is a user together with their booking history.
type Profile struct {
	User           *models.User     `json:"user"`
	Bookings       []models.Booking `json:"bookings"`
	TotalBookings  int              `json:"totalBookings"`
	ActiveBookings int              `json:"activeBookings"`
}

// UserService manages customer accounts.
type UserService interface {
	CheckUserExists(phone string) (bool, error)
	RegisterUser(u *models.User) (*models.User, error)
	GetUserByPhone(phone string) (*models.User, error)
	GetProfile(phone string) (*Profile, error)
	UpdateProfile(phone string, details *models.User) (*models.User, error)
	IsAdmin(phone string) (bool, error)
	CountUsers() (int64, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
}

// NewUserService wires the user service over its repositories.
func NewUserService(repo userRepo.UserRepository, bookings bookingRepo.BookingRepository) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Bookings: bookings}
}

// ValidPhone reports whether phone is a well-formed mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// CheckUserExists reports whether a customer with the given phone is registered.
func (svc *DefaultUserService) CheckUserExists(phone string) (bool, error) {
	if !ValidPhone(phone) {
		return false, utils.NewValidationError("Invalid phone number format")
	}
	return svc.Repo.ExistsByPhone(phone)
}

// RegisterUser creates a new customer account. Phone numbers are unique.
func (svc *DefaultUserService) RegisterUser(u *models.User) (*models.User, error) {
	if !ValidPhone(u.Phone) {
		return nil, utils.NewValidationError("Invalid phone number format")
	}
	if u.Name == "" {
		return nil, utils.NewValidationError("name is required")
	}
	exists, err := svc.Repo.ExistsByPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewConflictError("User already registered with this phone number")
	}
	u.ID = uuid.New().String()
	u.JoinDate = time.Now()
	if u.Role == "" {
		u.Role = "customer"
	}
	if err := svc.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByPhone fetches a user or reports NotFound.
func (svc *DefaultUserService) GetUserByPhone(phone string) (*models.User, error) {
	user, err := svc.Repo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("user", phone)
	}
	return user, nil
}

// GetProfile returns the user together with their bookings and an active
// count (confirmed or active status).
func (svc *DefaultUserService) GetProfile(phone string) (*Profile, error) {
	user, err := svc.GetUserByPhone(phone)
	if err != nil {
		return nil, err
	}
	bookings, err := svc.Bookings.FindByCustomerPhone(phone)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, b := range bookings {
		if b.Status == models.BookingConfirmed || b.Status == models.BookingActive {
			active++
		}
	}
	return &Profile{
		User:           user,
		Bookings:       bookings,
		TotalBookings:  len(bookings),
		ActiveBookings: active,
	}, nil
}

// UpdateProfile changes the mutable profile fields. Phone and role are not
// editable through this path.
func (svc *DefaultUserService) UpdateProfile(phone string, details *models.User) (*models.User, error) {
	user, err := svc.GetUserByPhone(phone)
	if err != nil {
		return nil, err
	}
	if details.Name != "" {
		user.Name = details.Name
	}
	if details.Email != "" {
		user.Email = details.Email
	}
	if details.DOB != "" {
		if _, err := models.ParseDate(details.DOB); err != nil {
			return nil, utils.NewValidationError("Invalid date of birth. Use YYYY-MM-DD")
		}
		user.DOB = details.DOB
	}
	if err := svc.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// IsAdmin reports whether the user holds the admin role. Unknown phones are
// simply not admins.
func (svc *DefaultUserService) IsAdmin(phone string) (bool, error) {
	user, err := svc.Repo.GetByPhone(phone)
	if err != nil {
		return false, err
	}
	return user != nil && user.Admin(), nil
}

// CountUsers reports the total registered customers.
func (svc *DefaultUserService) CountUsers() (int64, error) {
	return svc.Repo.CountAll()
}
