package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"userauth-server/internal/common"
	"userauth-server/internal/logging"
)

type UserHandler struct {
	users  UserService
	logger logging.Logger
}

func NewUserHandler(users UserService, logger logging.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Me returns the sanitized record of the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		respondInternal(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
