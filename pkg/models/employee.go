package models

import (
	"regexp"
	"time"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Employee struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	FullName      string        `json:"full_name" db:"full_name"`
	EmployeeID    *string       `json:"employee_id" db:"employee_id"`
	Title         *string       `json:"title" db:"title"`
	Phone         string        `json:"phone" db:"phone"`
	Email         string        `json:"email" db:"email"`
	PersonalEmail *string       `json:"personal_email" db:"personal_email"`
	Gender        *string       `json:"gender" db:"gender"`
	JoiningDate   *time.Time    `json:"joining_date" db:"joining_date"`
	Notes         *string       `json:"notes" db:"notes"`
	SiteID        uuid.NullUUID `json:"site_id" db:"site_id"`
	LocationID    uuid.NullUUID `json:"location_id" db:"location_id"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

type EmployeeRequest struct {
	FullName      string     `json:"full_name"`
	EmployeeID    *string    `json:"employee_id"`
	Title         *string    `json:"title"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	PersonalEmail *string    `json:"personal_email"`
	Gender        *string    `json:"gender"`
	JoiningDate   *string    `json:"joining_date"`
	Notes         *string    `json:"notes"`
	SiteID        *uuid.UUID `json:"site_id"`
	LocationID    *uuid.UUID `json:"location_id"`
}

// Validate reports every violated field at once, not just the first.
func (r *EmployeeRequest) Validate() error {
	var fields []string
	if r.FullName == "" {
		fields = append(fields, "full_name")
	}
	if r.Phone == "" {
		fields = append(fields, "phone")
	}
	if r.Email == "" {
		fields = append(fields, "email")
	} else if !emailPattern.MatchString(r.Email) {
		fields = append(fields, "email")
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}
