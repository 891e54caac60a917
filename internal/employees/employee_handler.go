package employees

import (
	"errors"
	"net/http"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	repository EmployeeRepository
}

func NewHandler(r EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repository: r}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/employees", h.ListEmployees)
	router.GET("/employees/:id", h.GetEmployee)
	router.POST("/employees", h.CreateEmployee)
	router.PUT("/employees/:id", h.UpdateEmployee)
	router.DELETE("/employees/:id", h.DeleteEmployee)
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.repository.GetEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list employees", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	employee, err := h.repository.GetEmployee(id)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
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

	joiningDate, err := models.ParseOptionalDate(req.JoiningDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": []string{"joining_date"}})
		return
	}

	employee := models.Employee{
		FullName:      req.FullName,
		EmployeeID:    req.EmployeeID,
		Title:         req.Title,
		Phone:         req.Phone,
		Email:         req.Email,
		PersonalEmail: req.PersonalEmail,
		Gender:        req.Gender,
		JoiningDate:   joiningDate,
		Notes:         req.Notes,
	}
	if req.SiteID != nil {
		employee.SiteID = uuid.NullUUID{UUID: *req.SiteID, Valid: true}
	}
	if req.LocationID != nil {
		employee.LocationID = uuid.NullUUID{UUID: *req.LocationID, Valid: true}
	}

	if err := h.repository.PersistEmployee(&employee); err != nil {
		switch err.(type) {
		case *apperrors.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	var req models.EmployeeRequest
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

	joiningDate, err := models.ParseOptionalDate(req.JoiningDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": []string{"joining_date"}})
		return
	}

	changes := goqu.Record{
		"full_name":      req.FullName,
		"employee_id":    req.EmployeeID,
		"title":          req.Title,
		"phone":          req.Phone,
		"email":          req.Email,
		"personal_email": req.PersonalEmail,
		"gender":         req.Gender,
		"joining_date":   joiningDate,
		"notes":          req.Notes,
		"site_id":        nullableUUID(req.SiteID),
		"location_id":    nullableUUID(req.LocationID),
	}

	employee, err := h.repository.UpdateEmployee(id, changes)
	if err != nil {
		var notFound *apperrors.NotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		default:
			if _, ok := err.(*apperrors.UniqueViolationError); ok {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	if err := h.repository.DeleteEmployee(id); err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
