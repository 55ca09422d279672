package handlers

import (
	"errors"
	"net/http"

	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/auth"
	"doctorportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account registration, listing and admin operations.
type UserHandler struct {
	Svc    user.UserService
	Gate   auth.AccessGate
	Logger *zap.Logger
}

func NewUserHandler(svc user.UserService, gate auth.AccessGate, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Gate: gate, Logger: logger}
}

// GetUsers returns every registered account.
func (h *UserHandler) GetUsers(c *gin.Context) {
	accounts, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// CreateUser registers a new account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.Svc.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		h.Logger.Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, account)
}

// CheckAdmin reports whether the given email belongs to an admin account.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Gate.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("Failed admin lookup", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed admin lookup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteUser sets role=admin on the target account. Only admins may promote;
// the operation is idempotent.
func (h *UserHandler) PromoteUser(c *gin.Context) {
	decodedEmail, ok := middleware.AuthEmail(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	id := c.Param("id")
	if err := h.Gate.Promote(c.Request.Context(), decodedEmail, id); err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		h.Logger.Error("Failed to promote user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
