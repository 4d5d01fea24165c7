package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/contact"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the contact-form endpoint.
type ContactHandler struct {
	Svc contact.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Svc: svc}
}

// PostContact handles POST /contact.
func (h *ContactHandler) PostContact(c *gin.Context) {
	var payload models.Contact
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Email == "" || payload.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and message are required", "")
		return
	}

	stored, err := h.Svc.Create(c.Request.Context(), &payload)
	if err != nil {
		utils.GetLogger().Error("failed to store contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert contact"})
		return
	}
	c.JSON(http.StatusOK, stored)
}
