package model

import (
	"encoding/json"
	"time"
)

// ApprovalStatus is the review state of a profile approval request.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ProfileApprovalRequest is a user-submitted profile change awaiting
// admin review. RequestedData carries the proposed fields, CurrentData
// a snapshot of what they would replace.
type ProfileApprovalRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`

	UserID        uint            `gorm:"index;not null" json:"user_id"`
	RequestType   string          `gorm:"size:50;not null" json:"request_type"`
	RequestedData json.RawMessage `gorm:"type:text;not null" json:"requested_data"`
	CurrentData   json.RawMessage `gorm:"type:text" json:"current_data,omitempty"`
	Status        ApprovalStatus  `gorm:"size:20;default:'pending';index" json:"status"`
	AdminNotes    string          `gorm:"type:text" json:"admin_notes,omitempty"`
	ReviewedBy    uint            `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewed_at,omitempty"`
}

// TableName sets the table name.
func (ProfileApprovalRequest) TableName() string {
	return "profile_approval_requests"
}
