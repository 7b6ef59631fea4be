package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// fanOutWidth bounds the number of per-contact lookups running at once
// when assembling the conversation list.
const fanOutWidth = 8

// contactVisibility maps a role to the roles it may exchange messages
// with. Students reach admins; alumni reach admins and students; admins
// reach everyone else.
var contactVisibility = map[model.Role][]model.Role{
	model.RoleAdmin:   {model.RoleStudent, model.RoleAlumni},
	model.RoleStudent: {model.RoleAdmin},
	model.RoleAlumni:  {model.RoleAdmin, model.RoleStudent},
}

// mayMessage reports whether the sender's role may exchange messages
// with the target's role.
func mayMessage(from, to model.Role) bool {
	for _, r := range contactVisibility[from] {
		if r == to {
			return true
		}
	}
	return false
}

// Conversation is a derived summary of the message history with one
// contact. It is recomputed on every load and never persisted.
type Conversation struct {
	Contact      model.User     `json:"contact"`
	LastMessage  *model.Message `json:"last_message,omitempty"`
	UnreadCount  int64          `json:"unread_count"`
	LastActivity *time.Time     `json:"last_activity,omitempty"`
}

// ConversationList is the aggregated conversation overview. A nonzero
// FailedLookups means some contacts could not be summarized; the rest
// of the list is still valid.
type ConversationList struct {
	Conversations []Conversation `json:"conversations"`
	FailedLookups int            `json:"failed_lookups"`
}

// MessagingService implements the contact directory, conversation
// aggregation and message threads.
type MessagingService struct {
	db *gorm.DB
}

// NewMessagingService creates a messaging service on the given store.
func NewMessagingService(db *gorm.DB) *MessagingService {
	return &MessagingService{db: db}
}

// ListContacts returns the users the current user may message, per the
// role visibility table, ordered by name. The current user and disabled
// accounts are excluded.
func (s *MessagingService) ListContacts(ctx context.Context, current model.User) ([]model.User, error) {
	roles, ok := contactVisibility[current.Role]
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, current.Role)
	}

	var contacts []model.User
	err := s.db.WithContext(ctx).
		Where("id <> ?", current.ID).
		Where("role IN ?", roles).
		Where("enabled = ?", true).
		Order("full_name ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return contacts, nil
}

// BuildConversations summarizes the message history with each contact:
// latest message in either direction plus the count of unread incoming
// messages. Lookups fan out concurrently; a failed lookup drops that
// contact from the result and bumps FailedLookups instead of aborting
// the whole aggregation.
func (s *MessagingService) BuildConversations(ctx context.Context, current model.User, contacts []model.User) (*ConversationList, error) {
	type slot struct {
		conv Conversation
		err  error
	}

	slots := make([]slot, len(contacts))
	sem := make(chan struct{}, fanOutWidth)
	var wg sync.WaitGroup

	for i, contact := range contacts {
		wg.Add(1)
		go func(i int, contact model.User) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			conv, err := s.summarize(ctx, current, contact)
			slots[i] = slot{conv: conv, err: err}
		}(i, contact)
	}
	wg.Wait()

	list := &ConversationList{Conversations: make([]Conversation, 0, len(contacts))}
	for _, sl := range slots {
		if sl.err != nil {
			zap.L().Warn("conversation lookup failed",
				zap.Uint("user_id", current.ID),
				zap.Error(sl.err))
			list.FailedLookups++
			continue
		}
		list.Conversations = append(list.Conversations, sl.conv)
	}

	if len(contacts) > 0 && list.FailedLookups == len(contacts) {
		return nil, fmt.Errorf("%w: all conversation lookups failed", ErrFetchFailed)
	}

	sortConversations(list.Conversations)
	return list, nil
}

// summarize builds the conversation entry for a single contact.
func (s *MessagingService) summarize(ctx context.Context, current, contact model.User) (Conversation, error) {
	conv := Conversation{Contact: contact}

	var last []model.Message
	err := s.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			current.ID, contact.ID, contact.ID, current.ID).
		Order("created_at DESC").
		Limit(1).
		Find(&last).Error
	if err != nil {
		return conv, err
	}
	if len(last) > 0 {
		msg := last[0]
		conv.LastMessage = &msg
		conv.LastActivity = &msg.CreatedAt
	}

	err = s.db.WithContext(ctx).Model(&model.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", contact.ID, current.ID, false).
		Count(&conv.UnreadCount).Error
	if err != nil {
		return conv, err
	}

	return conv, nil
}

// sortConversations orders by last activity, most recent first.
// Conversations without any message go last. Ties break on ascending
// contact ID so the order is deterministic.
func sortConversations(convs []Conversation) {
	sort.SliceStable(convs, func(i, j int) bool {
		a, b := convs[i], convs[j]
		switch {
		case a.LastActivity == nil && b.LastActivity == nil:
			return a.Contact.ID < b.Contact.ID
		case a.LastActivity == nil:
			return false
		case b.LastActivity == nil:
			return true
		case a.LastActivity.Equal(*b.LastActivity):
			return a.Contact.ID < b.Contact.ID
		default:
			return a.LastActivity.After(*b.LastActivity)
		}
	})
}

// LoadThread returns the full bidirectional message history with a
// contact, oldest first.
func (s *MessagingService) LoadThread(ctx context.Context, current model.User, contactID uint) ([]model.Message, error) {
	var msgs []model.Message
	err := s.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			current.ID, contactID, contactID, current.ID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return msgs, nil
}

// Send creates a message to the given contact. The body must be
// non-empty after trimming and the contact must be a real, enabled
// account within the sender's visibility; nothing is written otherwise.
func (s *MessagingService) Send(ctx context.Context, current model.User, contactID uint, body string) (*model.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: message body is empty", ErrValidation)
	}
	if contactID == current.ID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrValidation)
	}

	var contact model.User
	if err := s.db.WithContext(ctx).First(&contact, contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no such contact", ErrValidation)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if !contact.Enabled {
		return nil, fmt.Errorf("%w: contact is disabled", ErrValidation)
	}
	if !mayMessage(current.Role, contact.Role) {
		return nil, fmt.Errorf("%w: %s accounts cannot message %s accounts", ErrForbidden, current.Role, contact.Role)
	}

	msg := &model.Message{
		SenderID:    current.ID,
		RecipientID: contactID,
		Body:        body,
		IsRead:      false,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return msg, nil
}

// MarkIncomingRead flags every unread message from the contact to the
// current user as read and returns how many rows changed. Calling it
// again immediately returns zero.
func (s *MessagingService) MarkIncomingRead(ctx context.Context, current model.User, contactID uint) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", contactID, current.ID, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %v", ErrFetchFailed, res.Error)
	}
	return res.RowsAffected, nil
}
