package container

import (
	"context"
	"database/sql"

	"github.com/Da-0ldSaint/Asm/internal/activity"
	"github.com/Da-0ldSaint/Asm/internal/alerts"
	"github.com/Da-0ldSaint/Asm/internal/assets"
	"github.com/Da-0ldSaint/Asm/internal/dashboard"
	"github.com/Da-0ldSaint/Asm/internal/employees"
	"github.com/Da-0ldSaint/Asm/internal/integrations/sheets"
	"github.com/Da-0ldSaint/Asm/internal/references"
	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/internal/uploads"
	"github.com/Da-0ldSaint/Asm/internal/users"
	"github.com/Da-0ldSaint/Asm/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Repository       *repository.Repository
	Storage          *uploads.Storage
	LoginHandler     *security.LoginHandler
	ReferenceHandler *references.ReferenceHandler
	EmployeeHandler  *employees.EmployeeHandler
	AssetHandler     *assets.AssetHandler
	LedgerHandler    *activity.LedgerHandler
	AlertHandler     *alerts.AlertHandler
	DashboardHandler *dashboard.DashboardHandler
	UserHandler      *users.UsersHandler
	ExportHandler    *sheets.ExportHandler
}

func NewAppContainer(ctx context.Context, db *sql.DB, uploadDir string, log *zap.Logger) (*Container, error) {
	repo := repository.NewRepository(db)

	storage, err := uploads.NewStorage(uploadDir)
	if err != nil {
		return nil, err
	}

	referenceRepo := references.NewReferenceRepository(repo)
	employeeRepo := employees.NewRepository(repo)
	assetRepo := assets.NewRepository(repo)
	ledgerRepo := activity.NewRepository(repo)
	alertRepo := alerts.NewRepository(repo)
	userRepo := users.NewRepository(repo)
	dashboardService := dashboard.NewService(repo)

	c := &Container{
		Repository:       repo,
		Storage:          storage,
		LoginHandler:     security.NewLoginHandler(repo),
		ReferenceHandler: references.NewReferenceHandler(referenceRepo),
		EmployeeHandler:  employees.NewHandler(employeeRepo),
		AssetHandler:     assets.NewAssetHandler(assetRepo, storage),
		LedgerHandler:    activity.NewHandler(ledgerRepo),
		AlertHandler:     alerts.NewHandler(alertRepo),
		DashboardHandler: dashboard.NewHandler(dashboardService, ledgerRepo, alertRepo),
		UserHandler:      users.NewHandler(userRepo, storage),
	}

	// The sheets export is optional; without credentials the rest of the
	// API still serves.
	exportService, err := sheets.NewExportService(ctx)
	if err != nil {
		log.Warn("sheets export disabled", zap.Error(err))
	} else {
		c.ExportHandler = sheets.NewExportHandler(exportService, assetRepo)
	}

	return c, nil
}
