package alerts

import (
	"fmt"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type AlertRepository interface {
	GetAlerts() ([]models.Alert, error)
	PersistAlert(alert *models.Alert) error
}

type alertRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) AlertRepository {
	return &alertRepositoryImpl{repository: r}
}

// GetAlerts returns every alert; volumes are expected to stay small
// enough that pagination is not worth its complexity yet.
func (r *alertRepositoryImpl) GetAlerts() ([]models.Alert, error) {
	alerts := []models.Alert{}
	query := r.repository.Goqu.
		Select("id", "asset_id", "alert_type", "alert_date", "title", "created_at").
		From("alerts").
		Order(goqu.I("alert_date").Asc())

	if err := query.Executor().ScanStructs(&alerts); err != nil {
		return nil, fmt.Errorf("unable to fetch alerts: %w", err)
	}

	return alerts, nil
}

func (r *alertRepositoryImpl) PersistAlert(alert *models.Alert) error {
	alert.ID = uuid.New()
	query := r.repository.Goqu.Insert("alerts").
		Rows(goqu.Record{
			"id":         alert.ID,
			"asset_id":   alert.AssetID,
			"alert_type": alert.AlertType,
			"alert_date": alert.AlertDate,
			"title":      alert.Title,
		}).
		Returning("created_at")

	if _, err := query.Executor().ScanVal(&alert.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert alert record: %w", err)
	}

	return nil
}
