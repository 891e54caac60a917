package alerts

import (
	"errors"
	"net/http"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AlertHandler struct {
	repository AlertRepository
}

func NewHandler(r AlertRepository) *AlertHandler {
	return &AlertHandler{repository: r}
}

func (h *AlertHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/alerts", h.ListAlerts)
	router.POST("/alerts", h.CreateAlert)
}

func (h *AlertHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.repository.GetAlerts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list alerts", "details": err.Error()})
		return
	}

	events := make([]models.CalendarEvent, 0, len(alerts))
	for _, alert := range alerts {
		events = append(events, ToCalendarEvent(alert))
	}

	c.JSON(http.StatusOK, events)
}

func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req models.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := req.Validate(); err != nil {
		var validation *apperrors.ValidationError
		errors.As(err, &validation)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validation.Fields,
		})
		return
	}

	alertDate, err := models.ParseDate(req.AlertDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": []string{"alert_date"}})
		return
	}

	alert := models.Alert{
		AlertType: req.Type,
		AlertDate: alertDate,
		Title:     req.Title,
	}
	if req.AssetID != nil {
		alert.AssetID = uuid.NullUUID{UUID: *req.AssetID, Valid: true}
	}

	if err := h.repository.PersistAlert(&alert); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create alert", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, alert)
}
