package models

import (
	"time"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/google/uuid"
)

const (
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
	StatusRepair     = "repair"
)

type Asset struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Description   string        `json:"description" db:"description"`
	TagID         string        `json:"tag_id" db:"tag_id"`
	PurchasedFrom *string       `json:"purchased_from" db:"purchased_from"`
	PurchaseDate  *time.Time    `json:"purchase_date" db:"purchase_date"`
	Brand         *string       `json:"brand" db:"brand"`
	Cost          *float64      `json:"cost" db:"cost"`
	Model         *string       `json:"model" db:"model"`
	SerialNo      *string       `json:"serial_no" db:"serial_no"`
	WindowsKey    *string       `json:"windows_key" db:"windows_key"`
	OfficeKey     *string       `json:"office_key" db:"office_key"`
	Type          *string       `json:"type" db:"asset_type"`
	SiteID        uuid.NullUUID `json:"site_id" db:"site_id"`
	LocationID    uuid.NullUUID `json:"location_id" db:"location_id"`
	CategoryID    uuid.NullUUID `json:"category_id" db:"category_id"`
	Photo         *string       `json:"photo" db:"photo"`
	Status        string        `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// FlatAssetRow is the list-view projection with display names resolved
// through left joins. Dangling site/location/category references scan as
// empty strings.
type FlatAssetRow struct {
	ID           uuid.UUID `db:"id"`
	TagID        string    `db:"tag_id"`
	Description  string    `db:"description"`
	Brand        string    `db:"brand"`
	Model        string    `db:"model"`
	Status       string    `db:"status"`
	CategoryName string    `db:"category_name"`
	SiteName     string    `db:"site_name"`
	LocationName string    `db:"location_name"`
	CreatedAt    time.Time `db:"created_at"`
}

type AssetListView struct {
	ID           uuid.UUID `json:"id"`
	TagID        string    `json:"tag_id"`
	Description  string    `json:"description"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	CategoryName string    `json:"category_name"`
	SiteName     string    `json:"site_name"`
	LocationName string    `json:"location_name"`
	Status       string    `json:"status"`
}

func (fr *FlatAssetRow) TransformToView() AssetListView {
	return AssetListView{
		ID:           fr.ID,
		TagID:        fr.TagID,
		Description:  fr.Description,
		Brand:        fr.Brand,
		Model:        fr.Model,
		CategoryName: fr.CategoryName,
		SiteName:     fr.SiteName,
		LocationName: fr.LocationName,
		Status:       fr.Status,
	}
}

type AssetRequest struct {
	Description   string     `json:"description" form:"description"`
	TagID         string     `json:"tag_id" form:"tag_id"`
	PurchasedFrom *string    `json:"purchased_from" form:"purchased_from"`
	PurchaseDate  *string    `json:"purchase_date" form:"purchase_date"`
	Brand         *string    `json:"brand" form:"brand"`
	Cost          *float64   `json:"cost" form:"cost"`
	Model         *string    `json:"model" form:"model"`
	SerialNo      *string    `json:"serial_no" form:"serial_no"`
	WindowsKey    *string    `json:"windows_key" form:"windows_key"`
	OfficeKey     *string    `json:"office_key" form:"office_key"`
	Type          *string    `json:"type" form:"type"`
	SiteID        *uuid.UUID `json:"site_id" form:"site_id"`
	LocationID    *uuid.UUID `json:"location_id" form:"location_id"`
	CategoryID    *uuid.UUID `json:"category_id" form:"category_id"`
	Status        *string    `json:"status" form:"status"`
}

func (r *AssetRequest) Validate() error {
	var fields []string
	if r.Description == "" {
		fields = append(fields, "description")
	}
	if r.TagID == "" {
		fields = append(fields, "tag_id")
	}
	if r.Cost != nil && *r.Cost < 0 {
		fields = append(fields, "cost")
	}
	if r.Status != nil {
		switch *r.Status {
		case StatusActive, StatusCheckedOut, StatusRepair:
		default:
			fields = append(fields, "status")
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}
