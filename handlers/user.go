package handlers

import (
	"errors"
	"net/http"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the user, admin-role and token endpoints.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// GetJWT handles GET /jwt?email=. Issues an access token for a known user
// email; unknown emails get 401 with an empty token.
func (h *UserHandler) GetJWT(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email query parameter is required", "")
		return
	}

	token, err := h.Svc.IssueToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownEmail) {
			c.JSON(http.StatusUnauthorized, gin.H{"accessToken": ""})
			return
		}
		utils.GetLogger().Error("failed to issue token", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate JWT"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// GetUsers handles GET /users. Admin-gated in the route table.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// PostUser handles POST /users.
func (h *UserHandler) PostUser(c *gin.Context) {
	var payload models.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email is required", "")
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), &payload)
	if err != nil {
		utils.GetLogger().Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert user"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetUserAdminByEmail handles GET /users/admin/:email. Answers whether the
// email belongs to an admin; an unknown email is just not an admin.
func (h *UserHandler) GetUserAdminByEmail(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Svc.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("failed to check admin role", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PutUserAdminByID handles PUT /users/admin/:id. Admin-gated in the route
// table; promotion upserts, matching the historical API behavior.
func (h *UserHandler) PutUserAdminByID(c *gin.Context) {
	id := c.Param("id")

	res, err := h.Svc.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userRepo.ErrInvalidID) {
			utils.JSONError(c, http.StatusBadRequest, "invalid user ID", "")
			return
		}
		utils.GetLogger().Error("failed to promote user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user role"})
		return
	}
	c.JSON(http.StatusOK, res)
}
