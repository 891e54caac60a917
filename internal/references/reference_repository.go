package references

import (
	"fmt"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ReferenceRepository struct {
	repository *repository.Repository
}

func NewReferenceRepository(r *repository.Repository) *ReferenceRepository {
	return &ReferenceRepository{repository: r}
}

func (r *ReferenceRepository) GetSites() ([]models.Site, error) {
	sites := []models.Site{}
	query := r.repository.Goqu.
		Select("id", "name", "created_at").
		From("sites").
		Order(goqu.I("name").Asc())

	if err := query.Executor().ScanStructs(&sites); err != nil {
		return nil, fmt.Errorf("unable to fetch sites: %w", err)
	}

	return sites, nil
}

// PersistSite inserts a site; the unique index on name surfaces a
// duplicate as a UniqueViolationError.
func (r *ReferenceRepository) PersistSite(site *models.Site) error {
	site.ID = uuid.New()
	query := r.repository.Goqu.Insert("sites").
		Rows(goqu.Record{
			"id":   site.ID,
			"name": site.Name,
		}).
		Returning("created_at")

	if _, err := query.Executor().ScanVal(&site.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperrors.WrapDBError("Site name already exists", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert site record: %w", err)
	}

	return nil
}

func (r *ReferenceRepository) GetLocations(siteID *uuid.UUID) ([]models.Location, error) {
	locations := []models.Location{}
	query := r.repository.Goqu.
		Select("id", "name", "site_id", "created_at").
		From("locations").
		Order(goqu.I("name").Asc())

	if siteID != nil {
		query = query.Where(goqu.Ex{"site_id": *siteID})
	}

	if err := query.Executor().ScanStructs(&locations); err != nil {
		return nil, fmt.Errorf("unable to fetch locations: %w", err)
	}

	return locations, nil
}

// PersistLocation stores the site reference as given. A site id that
// resolves to nothing is accepted; the reference is weak and renders as
// an unknown site at read time.
func (r *ReferenceRepository) PersistLocation(location *models.Location) error {
	location.ID = uuid.New()
	query := r.repository.Goqu.Insert("locations").
		Rows(goqu.Record{
			"id":      location.ID,
			"name":    location.Name,
			"site_id": location.SiteID,
		}).
		Returning("created_at")

	if _, err := query.Executor().ScanVal(&location.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert location record: %w", err)
	}

	return nil
}

func (r *ReferenceRepository) GetCategories() ([]models.Category, error) {
	categories := []models.Category{}
	query := r.repository.Goqu.
		Select("id", "name", "created_at").
		From("categories").
		Order(goqu.I("name").Asc())

	if err := query.Executor().ScanStructs(&categories); err != nil {
		return nil, fmt.Errorf("unable to fetch categories: %w", err)
	}

	return categories, nil
}

func (r *ReferenceRepository) PersistCategory(category *models.Category) error {
	category.ID = uuid.New()
	query := r.repository.Goqu.Insert("categories").
		Rows(goqu.Record{
			"id":   category.ID,
			"name": category.Name,
		}).
		Returning("created_at")

	if _, err := query.Executor().ScanVal(&category.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert category record: %w", err)
	}

	return nil
}
