package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// TicketHandler serves support ticket endpoints.
type TicketHandler struct {
	tickets *service.TicketService
}

// NewTicketHandler creates a ticket handler.
func NewTicketHandler(tickets *service.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// CreateTicketRequest is the payload to open a ticket.
type CreateTicketRequest struct {
	Title            string `json:"title" binding:"required"`
	IssueDescription string `json:"issue_description" binding:"required"`
}

// Create opens a support ticket.
func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	t, err := h.tickets.Create(middleware.CurrentUserID(c), req.Title, req.IssueDescription)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, t)
}

// ListMine returns the caller's tickets.
func (h *TicketHandler) ListMine(c *gin.Context) {
	tickets, err := h.tickets.ListByUser(middleware.CurrentUserID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: tickets, Total: int64(len(tickets))})
}

// ListAll returns every ticket for the admin view.
func (h *TicketHandler) ListAll(c *gin.Context) {
	tickets, err := h.tickets.ListAll()
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: tickets, Total: int64(len(tickets))})
}

// UpdateTicketRequest is the payload to progress a ticket.
type UpdateTicketRequest struct {
	Status   model.TicketStatus `json:"status" binding:"required"`
	Response string             `json:"response"`
}

// Update sets a ticket's status and admin response.
func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	t, err := h.tickets.Update(id, req.Status, req.Response)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, t)
}
