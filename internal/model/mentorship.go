package model

import "time"

// MentorshipRequest is a student's request to be mentored by an alumni.
type MentorshipRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID      uint          `gorm:"index;not null" json:"student_id"`
	AlumniID       uint          `gorm:"index;not null" json:"alumni_id"`
	Message        string        `gorm:"type:text" json:"message,omitempty"`
	Status         RequestStatus `gorm:"size:20;default:'pending';index" json:"status"`
	AlumniResponse string        `gorm:"type:text" json:"alumni_response,omitempty"`
}

// TableName sets the table name.
func (MentorshipRequest) TableName() string {
	return "mentorship_requests"
}
