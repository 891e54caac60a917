package activity

import (
	"testing"
	"time"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newLedgerWithMock(t *testing.T) (LedgerRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(repository.NewRepository(db)), mock
}

func TestAppendEventWritesEntryAndStatusAtomically(t *testing.T) {
	repo, mock := newLedgerWithMock(t)

	assetID := uuid.New()
	actorID := uuid.New()
	eventDate := time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "assets" WHERE .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assetID.String()))
	mock.ExpectQuery(`INSERT INTO "activity_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"seq", "created_at"}).AddRow(42, createdAt))
	mock.ExpectQuery(`SELECT "event_type" FROM "activity_logs" WHERE .* ORDER BY "event_date" DESC, "seq" DESC LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"event_type"}).AddRow(models.EventCheckOut))
	mock.ExpectExec(`UPDATE "assets" SET "status"='checked_out'`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry, err := repo.AppendEvent(assetID, models.EventCheckOut, actorID, eventDate)

	assert.NoError(t, err)
	assert.Equal(t, assetID, entry.AssetID)
	assert.Equal(t, models.EventCheckOut, entry.EventType)
	assert.Equal(t, int64(42), entry.Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEventStatusFollowsLatestEventDate(t *testing.T) {
	repo, mock := newLedgerWithMock(t)

	assetID := uuid.New()
	// A check-in dated before an existing check-out: the later-dated
	// check-out stays the winner, so the status remains checked_out.
	backdated := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "assets" WHERE .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assetID.String()))
	mock.ExpectQuery(`INSERT INTO "activity_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"seq", "created_at"}).AddRow(43, time.Now()))
	mock.ExpectQuery(`SELECT "event_type" FROM "activity_logs" WHERE .* ORDER BY "event_date" DESC, "seq" DESC LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"event_type"}).AddRow(models.EventCheckOut))
	mock.ExpectExec(`UPDATE "assets" SET "status"='checked_out'`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.AppendEvent(assetID, models.EventCheckIn, uuid.New(), backdated)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEventUnknownAssetRollsBack(t *testing.T) {
	repo, mock := newLedgerWithMock(t)

	assetID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "assets" WHERE .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.AppendEvent(assetID, models.EventCheckOut, uuid.New(), time.Now())

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEventRejectsUnknownType(t *testing.T) {
	repo, mock := newLedgerWithMock(t)

	_, err := repo.AppendEvent(uuid.New(), "destroyed", uuid.New(), time.Now())

	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"type"}, validation.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRendersPlaceholdersForDanglingRefs(t *testing.T) {
	repo, mock := newLedgerWithMock(t)

	eventDate := time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"asset_tag_id", "description", "event_date", "assigned_to", "event_type"}).
		AddRow("AST-001", "ThinkPad T14", eventDate, "Jordan Lee", models.EventCheckOut).
		AddRow("unknown", "unknown", eventDate, "—", models.EventRepair)
	mock.ExpectQuery(`FROM "activity_logs" AS "al"`).WillReturnRows(rows)

	entries, err := repo.Feed("", DefaultFeedLimit)

	assert.NoError(t, err)
	assert.Equal(t, []models.FeedEntry{
		{AssetTagID: "AST-001", Description: "ThinkPad T14", EventDate: eventDate, AssignedTo: "Jordan Lee", Type: "checked_out"},
		{AssetTagID: "unknown", Description: "unknown", EventDate: eventDate, AssignedTo: "—", Type: "repair"},
	}, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
