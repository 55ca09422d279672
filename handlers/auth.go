package handlers

import (
	"errors"
	"net/http"

	"doctorportal/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves credential issuance.
type AuthHandler struct {
	Gate   auth.AccessGate
	Logger *zap.Logger
}

func NewAuthHandler(gate auth.AccessGate, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Gate: gate, Logger: logger}
}

// GetJWT issues a token for a registered email. Unknown emails get a fixed
// forbidden body, never a credential.
func (h *AuthHandler) GetJWT(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Gate.IssueToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": "forbidden"})
			return
		}
		h.Logger.Error("Failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
