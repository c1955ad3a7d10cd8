package user

import (
	"sort"
	"testing"
	"time"

	bookingRepo "allride/database/repository/booking"
	"allride/models"
	"allride/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	r.users[u.Phone] = &cp
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	cp := *u
	r.users[u.Phone] = &cp
	return nil
}

func (r *fakeUserRepo) GetByPhone(phone string) (*models.User, error) {
	u, ok := r.users[phone]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ExistsByPhone(phone string) (bool, error) {
	_, ok := r.users[phone]
	return ok, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

// stubBookings only answers FindByCustomerPhone; profile lookups never touch
// the rest of the repository.
type stubBookings struct {
	bookingRepo.BookingRepository
	bookings []models.Booking
}

func (s *stubBookings) FindByCustomerPhone(phone string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.CustomerPhone == phone {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func newTestUserService(bookings ...models.Booking) (*DefaultUserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, &stubBookings{bookings: bookings}), repo
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9812345678", true},
		{"6000000000", true},
		{"5812345678", false}, // leading digit below 6
		{"98123456789", false},
		{"981234567", false},
		{"98123a5678", false},
		{"+919812345678", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ValidPhone(tc.phone), "phone %q", tc.phone)
	}
}

func TestRegisterUser(t *testing.T) {
	svc, _ := newTestUserService()

	created, err := svc.RegisterUser(&models.User{Phone: "9812345678", Name: "Asha"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "customer", created.Role)
	assert.False(t, created.JoinDate.IsZero())

	exists, err := svc.CheckUserExists("9812345678")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRegisterUserDuplicatePhone(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.RegisterUser(&models.User{Phone: "9812345678", Name: "Asha"})
	require.NoError(t, err)

	_, err = svc.RegisterUser(&models.User{Phone: "9812345678", Name: "Ravi"})
	var conflict *utils.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestRegisterUserValidation(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.RegisterUser(&models.User{Phone: "12345", Name: "Asha"})
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.RegisterUser(&models.User{Phone: "9812345678"})
	require.ErrorAs(t, err, &ve)
}

func TestGetUserByPhoneNotFound(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.GetUserByPhone("9812345678")
	var nf *utils.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestGetProfileCountsActiveBookings(t *testing.T) {
	now := time.Now()
	svc, _ := newTestUserService(
		models.Booking{ID: "b1", CustomerPhone: "9812345678", Status: models.BookingConfirmed, CreatedAt: now},
		models.Booking{ID: "b2", CustomerPhone: "9812345678", Status: models.BookingActive, CreatedAt: now.Add(time.Minute)},
		models.Booking{ID: "b3", CustomerPhone: "9812345678", Status: models.BookingCompleted, CreatedAt: now.Add(2 * time.Minute)},
		models.Booking{ID: "b4", CustomerPhone: "9812345678", Status: models.BookingCancelled, CreatedAt: now.Add(3 * time.Minute)},
		models.Booking{ID: "b5", CustomerPhone: "9898989898", Status: models.BookingActive, CreatedAt: now},
	)
	_, err := svc.RegisterUser(&models.User{Phone: "9812345678", Name: "Asha"})
	require.NoError(t, err)

	profile, err := svc.GetProfile("9812345678")
	require.NoError(t, err)
	assert.Equal(t, 4, profile.TotalBookings)
	assert.Equal(t, 2, profile.ActiveBookings)
	assert.Equal(t, "Asha", profile.User.Name)
}

func TestUpdateProfile(t *testing.T) {
	svc, repo := newTestUserService()
	_, err := svc.RegisterUser(&models.User{Phone: "9812345678", Name: "Asha"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile("9812345678", &models.User{
		Name:  "Asha K",
		Email: "asha@example.com",
		DOB:   "1994-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, "asha@example.com", updated.Email)
	assert.Equal(t, "1994-06-15", updated.DOB)

	// Phone and role stay fixed regardless of the payload.
	stored, err := repo.GetByPhone("9812345678")
	require.NoError(t, err)
	assert.Equal(t, "customer", stored.Role)
	assert.Equal(t, "9812345678", stored.Phone)
}

func TestUpdateProfileRejectsBadDOB(t *testing.T) {
	svc, _ := newTestUserService()
	_, err := svc.RegisterUser(&models.User{Phone: "9812345678", Name: "Asha"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile("9812345678", &models.User{DOB: "15/06/1994"})
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestIsAdmin(t *testing.T) {
	svc, repo := newTestUserService()
	require.NoError(t, repo.Create(&models.User{Phone: "9812345678", Name: "Asha", Role: "admin"}))
	require.NoError(t, repo.Create(&models.User{Phone: "9898989898", Name: "Ravi", Role: "customer"}))

	admin, err := svc.IsAdmin("9812345678")
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = svc.IsAdmin("9898989898")
	require.NoError(t, err)
	assert.False(t, admin)

	// Unknown phones are not an error, just not admins.
	admin, err = svc.IsAdmin("9700000000")
	require.NoError(t, err)
	assert.False(t, admin)
}
