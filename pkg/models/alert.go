package models

import (
	"time"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/google/uuid"
)

const (
	AlertDue       = "due"
	AlertInsurance = "insurance"
	AlertLease     = "lease"
)

type Alert struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	AssetID   uuid.NullUUID `json:"asset_id" db:"asset_id"`
	AlertType string        `json:"type" db:"alert_type"`
	AlertDate time.Time     `json:"alert_date" db:"alert_date"`
	Title     *string       `json:"title" db:"title"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

type AlertRequest struct {
	AssetID   *uuid.UUID `json:"asset_id"`
	Type      string     `json:"type"`
	AlertDate string     `json:"alert_date"`
	Title     *string    `json:"title"`
}

func (r *AlertRequest) Validate() error {
	var fields []string
	switch r.Type {
	case AlertDue, AlertInsurance, AlertLease:
	default:
		fields = append(fields, "type")
	}
	if r.AlertDate == "" {
		fields = append(fields, "alert_date")
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

// CalendarEvent is the renderable projection of an alert.
type CalendarEvent struct {
	Title           string    `json:"title"`
	Date            time.Time `json:"date"`
	BackgroundColor string    `json:"backgroundColor"`
}
