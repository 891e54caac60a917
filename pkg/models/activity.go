package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventCheckOut = "check_out"
	EventCheckIn  = "check_in"
	EventRepair   = "repair"
)

// ActivityLog is one row of the append-only ledger. Seq is the monotonic
// insertion identifier used to break ordering ties; rows are never
// updated or deleted.
type ActivityLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Seq       int64     `json:"-" db:"seq"`
	AssetID   uuid.UUID `json:"asset_id" db:"asset_id"`
	EventType string    `json:"type" db:"event_type"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	EventDate time.Time `json:"date" db:"event_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type AppendEventRequest struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// FeedEntry joins a ledger row with the asset and acting user it refers
// to. Dangling references are rendered with placeholders, never dropped.
type FeedEntry struct {
	AssetTagID  string    `json:"assetTagId"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	AssignedTo  string    `json:"assignedTo"`
	Type        string    `json:"type"`
}

type FlatFeedRow struct {
	AssetTagID  string    `db:"asset_tag_id"`
	Description string    `db:"description"`
	EventDate   time.Time `db:"event_date"`
	AssignedTo  string    `db:"assigned_to"`
	EventType   string    `db:"event_type"`
}
