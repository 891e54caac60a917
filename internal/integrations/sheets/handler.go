package sheets

import (
	"net/http"
	"os"

	"github.com/Da-0ldSaint/Asm/internal/assets"
	"github.com/Da-0ldSaint/Asm/pkg/security"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service    *ExportService
	repository assets.AssetRepository
}

func NewExportHandler(service *ExportService, r assets.AssetRepository) *ExportHandler {
	return &ExportHandler{
		service:    service,
		repository: r,
	}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/assets/export/sheets", security.Authorize("admin"), h.ExportAssets)
}

func (h *ExportHandler) ExportAssets(c *gin.Context) {
	register, err := h.repository.GetAssets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read asset register", "details": err.Error()})
		return
	}

	spreadsheetID := os.Getenv("SHEETS_SPREADSHEET_ID")
	count, err := h.service.ExportAssets(spreadsheetID, register)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset register exported", "rows": count})
}
