package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// ReferralHandler serves referral request endpoints.
type ReferralHandler struct {
	referrals *service.ReferralService
}

// NewReferralHandler creates a referral handler.
func NewReferralHandler(referrals *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referrals: referrals}
}

// ReferralRequest is the payload to request a referral.
type ReferralRequest struct {
	JobID   uint   `json:"job_id" binding:"required"`
	Message string `json:"message"`
}

// Request files a referral request for a job.
func (h *ReferralHandler) Request(c *gin.Context) {
	var req ReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ref, err := h.referrals.Request(middleware.CurrentUserID(c), req.JobID, req.Message)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, ref)
}

// ListMine returns the caller's referral requests.
func (h *ReferralHandler) ListMine(c *gin.Context) {
	refs, err := h.referrals.ListByStudent(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: refs, Total: int64(len(refs))})
}

// ListReceived returns requests addressed to the calling alumni.
func (h *ReferralHandler) ListReceived(c *gin.Context) {
	refs, err := h.referrals.ListByAlumni(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: refs, Total: int64(len(refs))})
}

// RespondRequest is the payload to decide a referral request.
type RespondRequest struct {
	Status   model.RequestStatus `json:"status" binding:"required"`
	Response string              `json:"response"`
}

// Respond accepts or rejects a pending request.
func (h *ReferralHandler) Respond(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ref, err := h.referrals.Respond(id, middleware.CurrentUserID(c), req.Status, req.Response)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, ref)
}
