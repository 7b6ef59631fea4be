package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// TicketService manages support tickets.
type TicketService struct {
	db *gorm.DB
}

// NewTicketService creates a ticket service on the given store.
func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

// Create opens a new ticket for the user.
func (s *TicketService) Create(userID uint, title, description string) (*model.SupportTicket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and issue description are required", ErrValidation)
	}

	t := &model.SupportTicket{
		UserID:           userID,
		Title:            title,
		IssueDescription: description,
		Status:           model.TicketOpen,
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return t, nil
}

// ListByUser returns the user's tickets, newest first.
func (s *TicketService) ListByUser(userID uint) ([]model.SupportTicket, error) {
	var tickets []model.SupportTicket
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return tickets, nil
}

// ListAll returns every ticket for the admin view, open first.
func (s *TicketService) ListAll() ([]model.SupportTicket, error) {
	var tickets []model.SupportTicket
	err := s.db.
		Order("CASE status WHEN 'open' THEN 0 WHEN 'in_progress' THEN 1 ELSE 2 END, created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return tickets, nil
}

// Update sets the ticket's status and/or admin response.
func (s *TicketService) Update(id uint, status model.TicketStatus, response string) (*model.SupportTicket, error) {
	switch status {
	case model.TicketOpen, model.TicketInProgress, model.TicketResolved:
	default:
		return nil, fmt.Errorf("%w: unknown ticket status %q", ErrValidation, status)
	}

	var t model.SupportTicket
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	t.Status = status
	if response != "" {
		t.AdminResponse = response
	}
	if err := s.db.Save(&t).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &t, nil
}
