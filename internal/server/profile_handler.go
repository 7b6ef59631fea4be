package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// ProfileHandler serves student and alumni profile endpoints.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// userIDParam parses the :userID path segment.
func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userID"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return uint(id), true
}

// GetOwnStudent returns the caller's student profile.
func (h *ProfileHandler) GetOwnStudent(c *gin.Context) {
	p, err := h.profiles.GetStudentProfile(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, p)
}

// UpsertStudent creates or updates the caller's student profile.
func (h *ProfileHandler) UpsertStudent(c *gin.Context) {
	var in model.StudentProfile
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	p, err := h.profiles.UpsertStudentProfile(middleware.CurrentUserID(c), in)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, p)
}

// GetStudent returns another user's student profile.
func (h *ProfileHandler) GetStudent(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	p, err := h.profiles.GetStudentProfile(userID)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, p)
}

// GetOwnAlumni returns the caller's alumni profile.
func (h *ProfileHandler) GetOwnAlumni(c *gin.Context) {
	p, err := h.profiles.GetAlumniProfile(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, p)
}

// UpsertAlumni creates or updates the caller's alumni profile.
func (h *ProfileHandler) UpsertAlumni(c *gin.Context) {
	var in model.AlumniProfile
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	p, err := h.profiles.UpsertAlumniProfile(middleware.CurrentUserID(c), in)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, p)
}

// GetAlumni returns another user's alumni profile.
func (h *ProfileHandler) GetAlumni(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	p, err := h.profiles.GetAlumniProfile(userID)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, p)
}

// ListMentors returns alumni open to mentorship.
func (h *ProfileHandler) ListMentors(c *gin.Context) {
	mentors, err := h.profiles.ListMentors()
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: mentors, Total: int64(len(mentors))})
}
