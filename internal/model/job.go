package model

import "time"

// JobPosting is a job opening posted by an alumni or admin.
type JobPosting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"posted_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title        string   `gorm:"not null;size:190" json:"title"`
	Company      string   `gorm:"not null;size:190" json:"company"`
	Description  string   `gorm:"type:text;not null" json:"description"`
	Domain       string   `gorm:"size:100;index" json:"domain,omitempty"`
	Location     string   `gorm:"size:190" json:"location,omitempty"`
	SalaryRange  string   `gorm:"size:100" json:"salary_range,omitempty"`
	Requirements []string `gorm:"serializer:json" json:"requirements,omitempty"`
	PostedBy     uint     `gorm:"index;not null" json:"posted_by"`
	IsActive     bool     `gorm:"default:true;index" json:"is_active"`
	SuccessRate  float64  `json:"success_rate,omitempty"`
}

// TableName sets the table name.
func (JobPosting) TableName() string {
	return "job_postings"
}

// RequestStatus is the lifecycle state of a referral or mentorship
// request. Accepted and rejected are terminal.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// Referral is a student's request for a referral on a specific job,
// answered by the job's poster.
type Referral struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID          uint          `gorm:"index;not null" json:"job_id"`
	StudentID      uint          `gorm:"index;not null" json:"student_id"`
	AlumniID       uint          `gorm:"index;not null" json:"alumni_id"`
	Message        string        `gorm:"type:text" json:"message,omitempty"`
	Status         RequestStatus `gorm:"size:20;default:'pending';index" json:"status"`
	AlumniResponse string        `gorm:"type:text" json:"alumni_response,omitempty"`
}

// TableName sets the table name.
func (Referral) TableName() string {
	return "referrals"
}
