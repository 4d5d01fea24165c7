package handlers

import (
	"errors"
	"net/http"

	bookingRepo "medibook/database/repository/booking"
	"medibook/middleware"
	"medibook/models"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking and payment endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetBookings handles GET /bookings?email=. Runs behind VerifyJWT; the
// authenticated identity must match the requested email.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	decodedEmail, ok := middleware.DecodedEmail(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}
	if email != decodedEmail {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	bookings, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("failed to fetch bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")

	bkg, err := h.Svc.GetByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, bookingRepo.ErrInvalidID):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking ID", "")
		return
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	case err != nil:
		utils.GetLogger().Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, bkg)
}

// PostBooking handles POST /bookings. A duplicate (email, treatment, date)
// triple is acknowledged with a conflict message instead of a second record.
func (h *BookingHandler) PostBooking(c *gin.Context) {
	var payload models.Booking
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.AppointmentDate == "" || payload.Treatment == "" || payload.Email == "" || payload.Slot == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required booking fields", "appointmentDate, treatment, email and slot are required")
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), &payload)
	if err != nil {
		var dup *booking.AlreadyBookedError
		if errors.As(err, &dup) {
			c.JSON(http.StatusOK, gin.H{"acknowledged": false, "message": dup.Error()})
			return
		}
		utils.GetLogger().Error("failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert booking"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var payload models.Booking
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.Svc.CreatePaymentIntent(c.Request.Context(), &payload)
	if err != nil {
		utils.GetLogger().Error("failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, intent)
}

// PostPayment handles POST /payments.
func (h *BookingHandler) PostPayment(c *gin.Context) {
	var payload models.Payment
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.Svc.RecordPayment(c.Request.Context(), &payload)
	if err != nil {
		utils.GetLogger().Error("failed to record payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert payment"})
		return
	}
	c.JSON(http.StatusOK, stored)
}
