package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// MentorshipHandler serves mentorship request endpoints.
type MentorshipHandler struct {
	mentorship *service.MentorshipService
}

// NewMentorshipHandler creates a mentorship handler.
func NewMentorshipHandler(mentorship *service.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{mentorship: mentorship}
}

// MentorshipRequestPayload is the payload to request mentorship.
type MentorshipRequestPayload struct {
	AlumniID uint   `json:"alumni_id" binding:"required"`
	Message  string `json:"message"`
}

// Request files a mentorship request to an alumni.
func (h *MentorshipHandler) Request(c *gin.Context) {
	var req MentorshipRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	mr, err := h.mentorship.Request(middleware.CurrentUserID(c), req.AlumniID, req.Message)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, mr)
}

// ListMine returns the caller's mentorship requests.
func (h *MentorshipHandler) ListMine(c *gin.Context) {
	reqs, err := h.mentorship.ListByStudent(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: reqs, Total: int64(len(reqs))})
}

// ListReceived returns requests addressed to the calling alumni.
func (h *MentorshipHandler) ListReceived(c *gin.Context) {
	reqs, err := h.mentorship.ListByAlumni(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: reqs, Total: int64(len(reqs))})
}

// Respond accepts or rejects a pending mentorship request.
func (h *MentorshipHandler) Respond(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	mr, err := h.mentorship.Respond(id, middleware.CurrentUserID(c), req.Status, req.Response)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, mr)
}
