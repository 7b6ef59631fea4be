package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// AdminUserHandler serves the admin user management screens.
type AdminUserHandler struct {
	users *service.UserService
}

// NewAdminUserHandler creates an admin user handler.
func NewAdminUserHandler(users *service.UserService) *AdminUserHandler {
	return &AdminUserHandler{users: users}
}

// List returns accounts, optionally filtered by ?role=.
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.users.ListByRole(model.Role(c.Query("role")))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: users, Total: int64(len(users))})
}

// SetEnabledRequest is the payload to toggle an account.
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetEnabled enables or disables an account.
func (h *AdminUserHandler) SetEnabled(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.users.SetEnabled(id, *req.Enabled); err != nil {
		failErr(c, err)
		return
	}
	success(c, nil)
}
