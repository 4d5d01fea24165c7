package handlers

import (
	"errors"
	"net/http"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-gated doctor endpoints.
type DoctorHandler struct {
	Svc doctor.DoctorService
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Svc: svc}
}

// GetDoctors handles GET /doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to fetch doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch doctors"})
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// PostDoctor handles POST /doctors.
func (h *DoctorHandler) PostDoctor(c *gin.Context) {
	var payload models.Doctor
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Name == "" || payload.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required", "")
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), &payload)
	if err != nil {
		utils.GetLogger().Error("failed to create doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert doctor"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteDoctorByID handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctorByID(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrInvalidID) {
			utils.JSONError(c, http.StatusBadRequest, "invalid doctor ID", "")
			return
		}
		utils.GetLogger().Error("failed to delete doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
