package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/config"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// AuthHandler serves registration, login and account endpoints.
type AuthHandler struct {
	users *service.UserService
	cfg   *config.Config
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(users *service.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	FullName   string     `json:"full_name" binding:"required"`
	Email      string     `json:"email" binding:"required"`
	Password   string     `json:"password" binding:"required"`
	Role       model.Role `json:"role" binding:"required"`
	Department string     `json:"department"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and account summary.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}

// Register creates a student or alumni account. Admin accounts are
// created from the CLI only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.Role == model.RoleAdmin {
		fail(c, http.StatusForbidden, "admin accounts cannot be self-registered")
		return
	}

	user, err := h.users.Register(service.NewUser{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, user)
}

// Login authenticates and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		// Wrong email, wrong password and disabled accounts are
		// indistinguishable; store outages surface as such.
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrForbidden) {
			fail(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		failErr(c, err)
		return
	}

	ttl := time.Duration(h.cfg.Auth.TokenTTLHour) * time.Hour
	token, err := middleware.GenerateToken(user.ID, user.Role, h.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		failErr(c, err)
		return
	}

	success(c, LoginResponse{AccessToken: token, User: *user})
}

// Logout exists for the SPA's sake; tokens are stateless.
func (h *AuthHandler) Logout(c *gin.Context) {
	success(c, nil)
}

// GetUserInfo returns the caller's account.
func (h *AuthHandler) GetUserInfo(c *gin.Context) {
	user, err := h.users.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, user)
}

// ChangePasswordRequest is the password change payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword updates the caller's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.users.ChangePassword(middleware.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		failErr(c, err)
		return
	}
	success(c, nil)
}

// SetTheme persists the caller's theme preference.
func (h *AuthHandler) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.users.SetThemePreference(middleware.CurrentUserID(c), req.Theme); err != nil {
		failErr(c, err)
		return
	}
	success(c, nil)
}
