package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

// MessageHandler serves the messaging center: contact directory,
// conversation list and per-contact threads.
type MessageHandler struct {
	messaging *service.MessagingService
	users     *service.UserService
}

// NewMessageHandler creates a message handler.
func NewMessageHandler(messaging *service.MessagingService, users *service.UserService) *MessageHandler {
	return &MessageHandler{messaging: messaging, users: users}
}

// currentUser reconstructs the caller's identity from token claims.
// The token is trusted as-is; authorization happened at login.
func currentUser(c *gin.Context) model.User {
	return model.User{
		ID:   middleware.CurrentUserID(c),
		Role: middleware.CurrentRole(c),
	}
}

// contactIDParam parses the :contactID path segment.
func contactIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("contactID"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "invalid contact id")
		return 0, false
	}
	return uint(id), true
}

// ListContacts returns the users the caller may message.
func (h *MessageHandler) ListContacts(c *gin.Context) {
	contacts, err := h.messaging.ListContacts(c.Request.Context(), currentUser(c))
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: contacts, Total: int64(len(contacts))})
}

// ListConversations returns the aggregated conversation overview.
func (h *MessageHandler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	contacts, err := h.messaging.ListContacts(ctx, user)
	if err != nil {
		failErr(c, err)
		return
	}

	list, err := h.messaging.BuildConversations(ctx, user, contacts)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, list)
}

// LoadThread returns the full history with one contact, oldest first.
func (h *MessageHandler) LoadThread(c *gin.Context) {
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	msgs, err := h.messaging.LoadThread(c.Request.Context(), currentUser(c), contactID)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, model.ListResponse{Items: msgs, Total: int64(len(msgs))})
}

// SendRequest is the send payload.
type SendRequest struct {
	Body string `json:"body"`
}

// Send posts a message to the contact.
func (h *MessageHandler) Send(c *gin.Context) {
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	msg, err := h.messaging.Send(c.Request.Context(), currentUser(c), contactID, req.Body)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, msg)
}

// MarkRead flags all unread incoming messages from the contact as
// read. The SPA calls this when a thread becomes visible.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	count, err := h.messaging.MarkIncomingRead(c.Request.Context(), currentUser(c), contactID)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, gin.H{"marked_read": count})
}
