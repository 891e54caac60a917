package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Title        *string   `json:"title" db:"title"`
	Phone        *string   `json:"phone" db:"phone"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Timezone     string    `json:"timezone" db:"timezone"`
	DateFormat   string    `json:"date_format" db:"date_format"`
	TimeFormat   string    `json:"time_format" db:"time_format"`
	ProfileImage *string   `json:"profile_image" db:"profile_image"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicView is the shape returned by login and registration; it never
// carries the credential hash.
type PublicUserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

func (u *User) PublicView() PublicUserView {
	return PublicUserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" form:"first_name"`
	LastName     *string `json:"last_name" form:"last_name"`
	Title        *string `json:"title" form:"title"`
	Phone        *string `json:"phone" form:"phone"`
	Timezone     *string `json:"timezone" form:"timezone"`
	DateFormat   *string `json:"date_format" form:"date_format"`
	TimeFormat   *string `json:"time_format" form:"time_format"`
	ProfileImage *string `json:"-" form:"-"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
