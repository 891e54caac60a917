package assets

import (
	"errors"
	"net/http"

	"github.com/Da-0ldSaint/Asm/internal/uploads"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"
	"github.com/Da-0ldSaint/Asm/pkg/security"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssetHandler struct {
	repository AssetRepository
	storage    *uploads.Storage
}

func NewAssetHandler(r AssetRepository, storage *uploads.Storage) *AssetHandler {
	return &AssetHandler{
		repository: r,
		storage:    storage,
	}
}

func (h *AssetHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/assets", h.ListAssets)
	router.GET("/assets/:id", h.GetAsset)
	router.POST("/assets", h.CreateAsset)
	router.PUT("/assets/:id", h.UpdateAsset)
	router.DELETE("/assets/:id", security.Authorize("admin"), h.DeleteAsset)
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.repository.GetAssets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	asset, err := h.repository.GetAsset(id)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBind(&req); err != nil {
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

	purchaseDate, err := models.ParseOptionalDate(req.PurchaseDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": []string{"purchase_date"}})
		return
	}

	asset := models.Asset{
		Description:   req.Description,
		TagID:         req.TagID,
		PurchasedFrom: req.PurchasedFrom,
		PurchaseDate:  purchaseDate,
		Brand:         req.Brand,
		Cost:          req.Cost,
		Model:         req.Model,
		SerialNo:      req.SerialNo,
		WindowsKey:    req.WindowsKey,
		OfficeKey:     req.OfficeKey,
		Type:          req.Type,
	}
	if req.SiteID != nil {
		asset.SiteID = uuid.NullUUID{UUID: *req.SiteID, Valid: true}
	}
	if req.LocationID != nil {
		asset.LocationID = uuid.NullUUID{UUID: *req.LocationID, Valid: true}
	}
	if req.CategoryID != nil {
		asset.CategoryID = uuid.NullUUID{UUID: *req.CategoryID, Valid: true}
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}

	if file, err := c.FormFile("asset_photo"); err == nil {
		ref, err := h.storage.Store(file, "asset")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to store asset photo", "details": err.Error()})
			return
		}
		asset.Photo = &ref
	}

	if err := h.repository.PersistAsset(&asset); err != nil {
		switch err.(type) {
		case *apperrors.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset Tag ID already exists"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	var req models.AssetRequest
	if err := c.ShouldBind(&req); err != nil {
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

	purchaseDate, err := models.ParseOptionalDate(req.PurchaseDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": []string{"purchase_date"}})
		return
	}

	changes := goqu.Record{
		"description":    req.Description,
		"tag_id":         req.TagID,
		"purchased_from": req.PurchasedFrom,
		"purchase_date":  purchaseDate,
		"brand":          req.Brand,
		"cost":           req.Cost,
		"model":          req.Model,
		"serial_no":      req.SerialNo,
		"windows_key":    req.WindowsKey,
		"office_key":     req.OfficeKey,
		"asset_type":     req.Type,
		"site_id":        nullableUUID(req.SiteID),
		"location_id":    nullableUUID(req.LocationID),
		"category_id":    nullableUUID(req.CategoryID),
	}

	if file, err := c.FormFile("asset_photo"); err == nil {
		ref, err := h.storage.Store(file, "asset")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to store asset photo", "details": err.Error()})
			return
		}
		changes["photo"] = ref
	}

	asset, err := h.repository.UpdateAsset(id, changes)
	if err != nil {
		var notFound *apperrors.NotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		default:
			if _, ok := err.(*apperrors.UniqueViolationError); ok {
				c.JSON(http.StatusConflict, gin.H{"error": "Asset Tag ID already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	if err := h.repository.DeleteAsset(id); err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
