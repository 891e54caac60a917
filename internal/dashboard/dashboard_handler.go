package dashboard

import (
	"net/http"
	"time"

	"github.com/Da-0ldSaint/Asm/internal/activity"
	"github.com/Da-0ldSaint/Asm/internal/alerts"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the four dashboard sections. Each section has
// its own failure boundary: one failing store read returns 503 for that
// section only.
type DashboardHandler struct {
	service   *Service
	ledger    activity.LedgerRepository
	alertRepo alerts.AlertRepository
}

func NewHandler(service *Service, ledger activity.LedgerRepository, alertRepo alerts.AlertRepository) *DashboardHandler {
	return &DashboardHandler{
		service:   service,
		ledger:    ledger,
		alertRepo: alertRepo,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/stats", h.GetStats)
	router.GET("/dashboard/category-value", h.GetCategoryValue)
	router.GET("/dashboard/alerts", h.GetAlerts)
	router.GET("/dashboard/feeds", h.GetFeeds)
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(time.Now())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Dashboard stats unavailable", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetCategoryValue(c *gin.Context) {
	breakdown, err := h.service.CategoryValueBreakdown()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Category breakdown unavailable", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

func (h *DashboardHandler) GetAlerts(c *gin.Context) {
	allAlerts, err := h.alertRepo.GetAlerts()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Alert calendar unavailable", "details": err.Error()})
		return
	}

	events := make([]models.CalendarEvent, 0, len(allAlerts))
	for _, alert := range allAlerts {
		events = append(events, alerts.ToCalendarEvent(alert))
	}

	c.JSON(http.StatusOK, events)
}

func (h *DashboardHandler) GetFeeds(c *gin.Context) {
	entries, err := h.ledger.Feed("", activity.DefaultFeedLimit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Activity feed unavailable", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
