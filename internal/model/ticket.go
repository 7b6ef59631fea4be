package model

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

// SupportTicket is a help request raised by any user and handled by
// an admin.
type SupportTicket struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID           uint         `gorm:"index;not null" json:"user_id"`
	Title            string       `gorm:"not null;size:190" json:"title"`
	IssueDescription string       `gorm:"type:text;not null" json:"issue_description"`
	Status           TicketStatus `gorm:"size:20;default:'open';index" json:"status"`
	AdminResponse    string       `gorm:"type:text" json:"admin_response,omitempty"`
}

// TableName sets the table name.
func (SupportTicket) TableName() string {
	return "support_tickets"
}
