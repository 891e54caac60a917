package activity

import (
	"errors"
	"net/http"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"
	"github.com/Da-0ldSaint/Asm/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	repository LedgerRepository
}

func NewHandler(r LedgerRepository) *LedgerHandler {
	return &LedgerHandler{repository: r}
}

func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/assets/:id/activity", h.AppendEvent)
	router.GET("/activity/feed", h.Feed)
}

func (h *LedgerHandler) AppendEvent(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	identity, err := security.IdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to resolve caller identity"})
		return
	}

	var req models.AppendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	eventDate, err := models.ParseDate(req.Date)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": []string{"date"}})
		return
	}

	entry, err := h.repository.AppendEvent(assetID, req.Type, identity.UserID, eventDate)
	if err != nil {
		var notFound *apperrors.NotFoundError
		var validation *apperrors.ValidationError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		case errors.As(err, &validation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": validation.Fields})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append activity event", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *LedgerHandler) Feed(c *gin.Context) {
	eventType := ""
	if filter := c.Query("type"); filter != "" {
		resolved, err := EventTypeForFeedFilter(filter)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed filter", "details": err.Error()})
			return
		}
		eventType = resolved
	}

	entries, err := h.repository.Feed(eventType, DefaultFeedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch activity feed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
