package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// SettingHandler serves the admin settings store.
type SettingHandler struct {
	settings *service.SettingService
}

// NewSettingHandler creates a setting handler.
func NewSettingHandler(settings *service.SettingService) *SettingHandler {
	return &SettingHandler{settings: settings}
}

// List returns all settings.
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settings.List()
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: settings, Total: int64(len(settings))})
}

// SetSettingRequest is the payload to store a setting value.
type SetSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// Set upserts one setting by key.
func (h *SettingHandler) Set(c *gin.Context) {
	key := c.Param("key")

	var req SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	setting, err := h.settings.Set(key, req.Value)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, setting)
}
