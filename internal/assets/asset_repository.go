package assets

import (
	"fmt"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AssetRepository interface {
	GetAssets() ([]models.AssetListView, error)
	GetAsset(id uuid.UUID) (*models.Asset, error)
	PersistAsset(asset *models.Asset) error
	UpdateAsset(id uuid.UUID, changes goqu.Record) (*models.Asset, error)
	DeleteAsset(id uuid.UUID) error
}

type assetRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) AssetRepository {
	return &assetRepositoryImpl{repository: r}
}

var assetColumns = []interface{}{
	"id", "description", "tag_id", "purchased_from", "purchase_date",
	"brand", "cost", "model", "serial_no", "windows_key", "office_key",
	"asset_type", "site_id", "location_id", "category_id", "photo",
	"status", "created_at",
}

// GetAssets returns the list view, newest first, with display names
// resolved through left joins. Weak references that resolve to nothing
// scan as empty strings rather than failing the row.
func (r *assetRepositoryImpl) GetAssets() ([]models.AssetListView, error) {
	query := r.repository.Goqu.
		From(goqu.T("assets").As("a")).
		Select(
			"a.id",
			"a.tag_id",
			"a.description",
			goqu.COALESCE(goqu.I("a.brand"), "").As("brand"),
			goqu.COALESCE(goqu.I("a.model"), "").As("model"),
			"a.status",
			"a.created_at",
			goqu.COALESCE(goqu.I("c.name"), "").As("category_name"),
			goqu.COALESCE(goqu.I("s.name"), "").As("site_name"),
			goqu.COALESCE(goqu.I("l.name"), "").As("location_name"),
		).
		LeftJoin(goqu.T("categories").As("c"), goqu.On(goqu.Ex{"a.category_id": goqu.I("c.id")})).
		LeftJoin(goqu.T("sites").As("s"), goqu.On(goqu.Ex{"a.site_id": goqu.I("s.id")})).
		LeftJoin(goqu.T("locations").As("l"), goqu.On(goqu.Ex{"a.location_id": goqu.I("l.id")})).
		Order(goqu.I("a.created_at").Desc())

	rows := []models.FlatAssetRow{}
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to fetch assets: %w", err)
	}

	views := make([]models.AssetListView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].TransformToView())
	}

	return views, nil
}

func (r *assetRepositoryImpl) GetAsset(id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	query := r.repository.Goqu.
		Select(assetColumns...).
		From("assets").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&asset)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch asset: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("asset", id.String())
	}

	return &asset, nil
}

func (r *assetRepositoryImpl) PersistAsset(asset *models.Asset) error {
	asset.ID = uuid.New()
	if asset.Status == "" {
		asset.Status = models.StatusActive
	}

	query := r.repository.Goqu.Insert("assets").
		Rows(goqu.Record{
			"id":             asset.ID,
			"description":    asset.Description,
			"tag_id":         asset.TagID,
			"purchased_from": asset.PurchasedFrom,
			"purchase_date":  asset.PurchaseDate,
			"brand":          asset.Brand,
			"cost":           asset.Cost,
			"model":          asset.Model,
			"serial_no":      asset.SerialNo,
			"windows_key":    asset.WindowsKey,
			"office_key":     asset.OfficeKey,
			"asset_type":     asset.Type,
			"site_id":        asset.SiteID,
			"location_id":    asset.LocationID,
			"category_id":    asset.CategoryID,
			"photo":          asset.Photo,
			"status":         asset.Status,
		}).
		Returning("created_at")

	if _, err := query.Executor().ScanVal(&asset.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperrors.WrapDBError("Asset tag id already exists", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert asset record: %w", err)
	}

	return nil
}

func (r *assetRepositoryImpl) UpdateAsset(id uuid.UUID, changes goqu.Record) (*models.Asset, error) {
	if len(changes) == 0 {
		return r.GetAsset(id)
	}

	query := r.repository.Goqu.
		Update("assets").
		Set(changes).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, apperrors.WrapDBError("Asset tag id already exists", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("asset", id.String())
	}

	return r.GetAsset(id)
}

func (r *assetRepositoryImpl) DeleteAsset(id uuid.UUID) error {
	result, err := r.repository.Goqu.
		Delete("assets").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("asset", id.String())
	}

	return nil
}
