package models

import "time"

// User is a customer identified by phone number. Authentication is OTP-only,
// so there is no password material here.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Phone     string    `bson:"phone" json:"phone"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	DOB       string    `bson:"dob" json:"dob"` // "2006-01-02"
	JoinDate  time.Time `bson:"join_date" json:"joinDate"`
	Role      string    `bson:"role" json:"role"`
	IsAdmin   bool      `bson:"is_admin" json:"isAdmin"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Admin reports whether the user has the admin role.
func (u *User) Admin() bool {
	return u.IsAdmin || u.Role == "admin"
}
