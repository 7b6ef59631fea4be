package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// ApprovalHandler serves profile approval request endpoints.
type ApprovalHandler struct {
	approvals *service.ApprovalService
}

// NewApprovalHandler creates an approval handler.
func NewApprovalHandler(approvals *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvals: approvals}
}

// SubmitApprovalRequest is the payload to file a change request.
type SubmitApprovalRequest struct {
	RequestType   string          `json:"request_type" binding:"required"`
	RequestedData json.RawMessage `json:"requested_data" binding:"required"`
	CurrentData   json.RawMessage `json:"current_data"`
}

// Submit files a profile change request for admin review.
func (h *ApprovalHandler) Submit(c *gin.Context) {
	var req SubmitApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ar, err := h.approvals.Submit(middleware.CurrentUserID(c), req.RequestType, req.RequestedData, req.CurrentData)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, ar)
}

// ListMine returns the caller's own change requests.
func (h *ApprovalHandler) ListMine(c *gin.Context) {
	reqs, err := h.approvals.ListByUser(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: reqs, Total: int64(len(reqs))})
}

// List returns change requests for the admin view, optionally
// filtered by ?status=.
func (h *ApprovalHandler) List(c *gin.Context) {
	reqs, err := h.approvals.List(model.ApprovalStatus(c.Query("status")))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: reqs, Total: int64(len(reqs))})
}

// ReviewRequest is the payload to decide a change request.
type ReviewRequest struct {
	Status model.ApprovalStatus `json:"status" binding:"required"`
	Notes  string               `json:"notes"`
}

// Review approves or rejects a pending change request.
func (h *ApprovalHandler) Review(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ar, err := h.approvals.Review(id, middleware.CurrentUserID(c), req.Status, req.Notes)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, ar)
}
