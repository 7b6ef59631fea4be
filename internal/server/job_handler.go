package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// JobHandler serves job board endpoints.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler creates a job handler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// List returns active postings, optionally filtered by search/domain.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.ListActive(service.JobFilter{
		Search: c.Query("search"),
		Domain: c.Query("domain"),
	})
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: jobs, Total: int64(len(jobs))})
}

// Create posts a new job opening.
func (h *JobHandler) Create(c *gin.Context) {
	var in model.JobPosting
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	job, err := h.jobs.Create(middleware.CurrentUserID(c), in)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, job)
}

// ListMine returns the caller's own postings.
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobs.ListByPoster(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: jobs, Total: int64(len(jobs))})
}

// Deactivate hides a posting from the board.
func (h *JobHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := h.jobs.Deactivate(id, middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, nil)
}
