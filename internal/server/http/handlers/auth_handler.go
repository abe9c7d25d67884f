// Package handlers contains the gin request handlers for the public HTTP
// surface.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"userauth-server/internal/common"
	"userauth-server/internal/logging"
	"userauth-server/internal/server/auth"
	"userauth-server/internal/server/http/middleware"
	"userauth-server/internal/server/users"
)

// UserService is the slice of the users service the handlers depend on.
type UserService interface {
	CreateUser(ctx context.Context, name, email, password, role string) (*users.SanitizedUser, error)
	AuthenticateUser(ctx context.Context, email, password string) (*users.SanitizedUser, error)
	GetByID(ctx context.Context, id string) (*users.SanitizedUser, error)
}

type AuthHandler struct {
	users  UserService
	tokens *auth.TokenManager
	logger logging.Logger
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(users UserService, tokens *auth.TokenManager, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

// SignUp registers a new user, sets the session cookie, and returns the
// sanitized record with 201.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		respondInternal(c, h.logger, err)
		return
	}

	token, err := h.tokens.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		respondInternal(c, h.logger, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"user":    user,
	})
}

// SignIn verifies credentials, sets the session cookie, and returns the
// sanitized record. Unknown email and wrong password are indistinguishable
// to the client.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.users.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) || errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		respondInternal(c, h.logger, err)
		return
	}

	token, err := h.tokens.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		respondInternal(c, h.logger, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in",
		"user":    user,
	})
}

// SignOut clears the session cookie. With no server-side session store there
// is nothing else to revoke.
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.tokens.Validity().Seconds()), "/", "", false, true)
}
