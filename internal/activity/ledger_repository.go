package activity

import (
	"fmt"
	"time"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const DefaultFeedLimit = 30

type LedgerRepository interface {
	AppendEvent(assetID uuid.UUID, eventType string, actorID uuid.UUID, eventDate time.Time) (*models.ActivityLog, error)
	Feed(eventType string, limit uint) ([]models.FeedEntry, error)
}

type ledgerRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) LedgerRepository {
	return &ledgerRepositoryImpl{repository: r}
}

// AppendEvent writes the ledger entry and recomputes the asset's cached
// status inside one transaction, so no reader ever sees the entry without
// the matching status. The asset row is locked first to serialize
// concurrent appends for the same asset.
func (r *ledgerRepositoryImpl) AppendEvent(assetID uuid.UUID, eventType string, actorID uuid.UUID, eventDate time.Time) (*models.ActivityLog, error) {
	if _, err := StatusForEvent(eventType); err != nil {
		return nil, apperrors.NewValidationError("type")
	}

	entry := &models.ActivityLog{
		ID:        uuid.New(),
		AssetID:   assetID,
		EventType: eventType,
		UserID:    actorID,
		EventDate: eventDate,
	}

	err := repository.WithTransaction(r.repository.Goqu, func(tx *goqu.TxDatabase) error {
		var lockedID uuid.UUID
		found, err := tx.Select("id").
			From("assets").
			Where(goqu.Ex{"id": assetID}).
			ForUpdate(exp.Wait).
			Executor().
			ScanVal(&lockedID)
		if err != nil {
			return fmt.Errorf("failed to lock asset row: %w", err)
		}
		if !found {
			return apperrors.NewNotFoundError("asset", assetID.String())
		}

		insert := tx.Insert("activity_logs").
			Rows(goqu.Record{
				"id":         entry.ID,
				"asset_id":   entry.AssetID,
				"event_type": entry.EventType,
				"user_id":    entry.UserID,
				"event_date": entry.EventDate,
			}).
			Returning("seq", "created_at")

		if _, err := insert.Executor().ScanStruct(entry); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		// The entry with the latest event date wins; identical dates fall
		// back to the monotonic insertion sequence, higher wins.
		var latestType string
		found, err = tx.Select("event_type").
			From("activity_logs").
			Where(goqu.Ex{"asset_id": assetID}).
			Order(goqu.I("event_date").Desc(), goqu.I("seq").Desc()).
			Limit(1).
			Executor().
			ScanVal(&latestType)
		if err != nil {
			return fmt.Errorf("failed to read latest ledger entry: %w", err)
		}
		if !found {
			latestType = entry.EventType
		}

		status, err := StatusForEvent(latestType)
		if err != nil {
			return err
		}

		if _, err := tx.Update("assets").
			Set(goqu.Record{"status": status}).
			Where(goqu.Ex{"id": assetID}).
			Executor().
			Exec(); err != nil {
			return fmt.Errorf("failed to update asset status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Feed returns the newest entries joined with asset and actor details.
// Dangling references render as placeholders instead of dropping rows.
func (r *ledgerRepositoryImpl) Feed(eventType string, limit uint) ([]models.FeedEntry, error) {
	if limit == 0 {
		limit = DefaultFeedLimit
	}

	query := r.repository.Goqu.
		From(goqu.T("activity_logs").As("al")).
		Select(
			goqu.COALESCE(goqu.I("a.tag_id"), "unknown").As("asset_tag_id"),
			goqu.COALESCE(goqu.I("a.description"), "unknown").As("description"),
			goqu.I("al.event_date").As("event_date"),
			goqu.COALESCE(goqu.L("u.first_name || ' ' || u.last_name"), "—").As("assigned_to"),
			goqu.I("al.event_type").As("event_type"),
		).
		LeftJoin(goqu.T("assets").As("a"), goqu.On(goqu.Ex{"al.asset_id": goqu.I("a.id")})).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.Ex{"al.user_id": goqu.I("u.id")})).
		Order(goqu.I("al.created_at").Desc(), goqu.I("al.seq").Desc()).
		Limit(limit)

	if eventType != "" {
		query = query.Where(goqu.Ex{"al.event_type": eventType})
	}

	rows := []models.FlatFeedRow{}
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to fetch activity feed: %w", err)
	}

	entries := make([]models.FeedEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.FeedEntry{
			AssetTagID:  row.AssetTagID,
			Description: row.Description,
			EventDate:   row.EventDate,
			AssignedTo:  row.AssignedTo,
			Type:        FeedTypeForEvent(row.EventType),
		})
	}

	return entries, nil
}
