package references

import (
	"net/http"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReferenceStore interface {
	GetSites() ([]models.Site, error)
	PersistSite(site *models.Site) error
	GetLocations(siteID *uuid.UUID) ([]models.Location, error)
	PersistLocation(location *models.Location) error
	GetCategories() ([]models.Category, error)
	PersistCategory(category *models.Category) error
}

type ReferenceHandler struct {
	store ReferenceStore
}

func NewReferenceHandler(store ReferenceStore) *ReferenceHandler {
	return &ReferenceHandler{store: store}
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sites", h.ListSites)
	router.POST("/sites", h.CreateSite)
	router.GET("/locations", h.ListLocations)
	router.POST("/locations", h.CreateLocation)
	router.GET("/categories", h.ListCategories)
	router.POST("/categories", h.CreateCategory)
}

func (h *ReferenceHandler) ListSites(c *gin.Context) {
	sites, err := h.store.GetSites()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list sites", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sites)
}

func (h *ReferenceHandler) CreateSite(c *gin.Context) {
	var req models.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Site name is required"})
		return
	}

	site := models.Site{Name: req.Name}
	if err := h.store.PersistSite(&site); err != nil {
		switch err.(type) {
		case *apperrors.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Site name already exists"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, site)
}

func (h *ReferenceHandler) ListLocations(c *gin.Context) {
	var siteID *uuid.UUID
	if raw := c.Query("site_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site id"})
			return
		}
		siteID = &parsed
	}

	locations, err := h.store.GetLocations(siteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *ReferenceHandler) CreateLocation(c *gin.Context) {
	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Location name is required"})
		return
	}

	location := models.Location{Name: req.Name}
	if req.SiteID != nil {
		location.SiteID = uuid.NullUUID{UUID: *req.SiteID, Valid: true}
	}

	if err := h.store.PersistLocation(&location); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	categories, err := h.store.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *ReferenceHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category := models.Category{Name: req.Name}
	if err := h.store.PersistCategory(&category); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}
