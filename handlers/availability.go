package handlers

import (
	"net/http"

	"medibook/services/availability"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the appointment-option endpoints.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetAppointmentOptions handles GET /appointmentOptions?date=.
func (h *AvailabilityHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}

	options, err := h.Svc.Resolve(c.Request.Context(), date)
	if err != nil {
		utils.GetLogger().Error("failed to resolve availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment options"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetAppointmentOptionsV2 handles GET /v2/appointmentOptions?data=. The
// second version resolves availability inside the store with an aggregation.
// The query key "data" is a long-shipped quirk clients depend on.
func (h *AvailabilityHandler) GetAppointmentOptionsV2(c *gin.Context) {
	date := c.Query("data")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "data query parameter is required", "")
		return
	}

	options, err := h.Svc.ResolveAggregate(c.Request.Context(), date)
	if err != nil {
		utils.GetLogger().Error("failed to aggregate availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment options"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetAppointmentSpecialty handles GET /appointmentSpecialty.
func (h *AvailabilityHandler) GetAppointmentSpecialty(c *gin.Context) {
	names, err := h.Svc.TreatmentNames(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list treatment names", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment specialties"})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}
