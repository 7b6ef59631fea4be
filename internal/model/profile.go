package model

import "time"

// Certification is one earned certificate on a profile. Stored as a
// structured JSON list rather than a free-form blob.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// StudentProfile is the extended profile a student maintains.
type StudentProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`

	RollNumber       string          `gorm:"size:50" json:"roll_number,omitempty"`
	Year             string          `gorm:"size:20" json:"year,omitempty"`
	CurrentEducation string          `gorm:"size:190" json:"current_education,omitempty"`
	CGPA             float64         `json:"cgpa,omitempty"`
	Gender           string          `gorm:"size:20" json:"gender,omitempty"`
	Address          string          `gorm:"size:255" json:"address,omitempty"`
	Skills           []string        `gorm:"serializer:json" json:"skills,omitempty"`
	Interests        []string        `gorm:"serializer:json" json:"interests,omitempty"`
	Certifications   []Certification `gorm:"serializer:json" json:"certifications,omitempty"`
	ReadinessScore   int             `json:"placement_readiness_score,omitempty"`
	ResumeURL        string          `gorm:"size:255" json:"resume_url,omitempty"`
	ProfilePicture   string          `gorm:"size:255" json:"profile_picture,omitempty"`
}

// TableName sets the table name.
func (StudentProfile) TableName() string {
	return "student_profiles"
}

// AlumniProfile is the extended profile an alumni maintains.
type AlumniProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`

	RollNumber       string          `gorm:"size:50" json:"roll_number,omitempty"`
	GraduationYear   string          `gorm:"size:20" json:"graduation_year,omitempty"`
	Company          string          `gorm:"size:190" json:"company,omitempty"`
	Designation      string          `gorm:"size:190" json:"designation,omitempty"`
	Domain           string          `gorm:"size:100" json:"domain,omitempty"`
	ExperienceYears  int             `json:"experience_years,omitempty"`
	Location         string          `gorm:"size:190" json:"location,omitempty"`
	LinkedinURL      string          `gorm:"size:255" json:"linkedin_url,omitempty"`
	EducationSummary string          `gorm:"type:text" json:"education_summary,omitempty"`
	SuccessStory     string          `gorm:"type:text" json:"success_story,omitempty"`
	Skills           []string        `gorm:"serializer:json" json:"skills,omitempty"`
	Certifications   []Certification `gorm:"serializer:json" json:"certifications,omitempty"`
	MentorAvailable  bool            `gorm:"default:false" json:"availability_for_mentorship"`
	ResumeURL        string          `gorm:"size:255" json:"resume_url,omitempty"`
	ProfilePicture   string          `gorm:"size:255" json:"profile_picture,omitempty"`
}

// TableName sets the table name.
func (AlumniProfile) TableName() string {
	return "alumni_profiles"
}
