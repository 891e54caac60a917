package users

import (
	"errors"
	"net/http"

	"github.com/Da-0ldSaint/Asm/internal/uploads"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"
	"github.com/Da-0ldSaint/Asm/pkg/security"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

const minPasswordLength = 8

type UsersHandler struct {
	repository UserRepository
	storage    *uploads.Storage
}

func NewHandler(r UserRepository, storage *uploads.Storage) *UsersHandler {
	return &UsersHandler{
		repository: r,
		storage:    storage,
	}
}

func (h *UsersHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", h.GetProfile)
	router.PUT("/users/me", h.UpdateProfile)
	router.PUT("/users/change-password", h.ChangePassword)
}

func (h *UsersHandler) GetProfile(c *gin.Context) {
	identity, err := security.IdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to resolve caller identity"})
		return
	}

	user, err := h.repository.GetUser(identity.UserID)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes profile and locale fields only; password and
// email stay untouched no matter what the payload carries.
func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	identity, err := security.IdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to resolve caller identity"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	changes := goqu.Record{}
	if req.FirstName != nil {
		changes["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		changes["last_name"] = *req.LastName
	}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Phone != nil {
		changes["phone"] = *req.Phone
	}
	if req.Timezone != nil {
		changes["timezone"] = *req.Timezone
	}
	if req.DateFormat != nil {
		changes["date_format"] = *req.DateFormat
	}
	if req.TimeFormat != nil {
		changes["time_format"] = *req.TimeFormat
	}

	if file, err := c.FormFile("profile_image"); err == nil {
		ref, err := h.storage.Store(file, "profile")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to store profile image", "details": err.Error()})
			return
		}
		changes["profile_image"] = ref
	}

	user, err := h.repository.UpdateUser(identity.UserID, changes)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UsersHandler) ChangePassword(c *gin.Context) {
	identity, err := security.IdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to resolve caller identity"})
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both passwords required"})
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}

	user, err := h.repository.GetUser(identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user", "details": err.Error()})
		return
	}

	if !security.ComparePassword(user.PasswordHash, req.CurrentPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := h.repository.UpdatePassword(identity.UserID, hashed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
