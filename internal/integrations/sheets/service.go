package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/Da-0ldSaint/Asm/pkg/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// ExportService writes the asset register to a Google spreadsheet so the
// finance side can work with a live copy instead of CSV dumps.
type ExportService struct {
	sheetsService *sheetsapi.Service
}

func NewExportService(ctx context.Context) (*ExportService, error) {
	credentials, err := loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	service, err := sheetsapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("could not create sheets client: %w", err)
	}

	return &ExportService{sheetsService: service}, nil
}

// loadCredentials prefers the env JSON blob; the local file path is a
// development fallback.
func loadCredentials(ctx context.Context) (*google.Credentials, error) {
	if credentialsJSON := os.Getenv("SHEETS_CREDENTIALS_JSON"); credentialsJSON != "" {
		credentials, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), sheetsapi.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("could not load sheets credentials from env: %w", err)
		}
		return credentials, nil
	}

	credentialsFile := "configs/google-credentials.json"
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("could not read credentials file %s: %w", credentialsFile, err)
	}

	credentials, err := google.CredentialsFromJSON(ctx, b, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("could not load sheets credentials from file: %w", err)
	}
	return credentials, nil
}

var exportHeader = []interface{}{
	"Tag ID", "Description", "Brand", "Model", "Category", "Site", "Location", "Status",
}

// ExportAssets replaces the sheet content with the current register and
// returns the number of exported rows.
func (s *ExportService) ExportAssets(spreadsheetID string, assets []models.AssetListView) (int, error) {
	if spreadsheetID == "" {
		return 0, fmt.Errorf("spreadsheet id is not configured")
	}

	values := make([][]interface{}, 0, len(assets)+1)
	values = append(values, exportHeader)
	for _, asset := range assets {
		values = append(values, []interface{}{
			asset.TagID,
			asset.Description,
			asset.Brand,
			asset.Model,
			asset.CategoryName,
			asset.SiteName,
			asset.LocationName,
			asset.Status,
		})
	}

	body := &sheetsapi.ValueRange{Values: values}
	_, err := s.sheetsService.Spreadsheets.Values.
		Update(spreadsheetID, "A1", body).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return 0, fmt.Errorf("could not write asset register to sheet: %w", err)
	}

	return len(assets), nil
}
