package models

import (
	"time"

	"github.com/google/uuid"
)

// Location carries a weak reference to its site: the id is stored as-is
// and may point at a site that no longer exists.
type Location struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	SiteID    uuid.NullUUID `json:"site_id" db:"site_id"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

type LocationRequest struct {
	Name   string     `json:"name"`
	SiteID *uuid.UUID `json:"site_id"`
}
