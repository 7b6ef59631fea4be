package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role is a user's fixed platform role, assigned at registration.
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account. The role never changes after creation.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	FullName        string `gorm:"not null;size:120" json:"full_name"`
	Email           string `gorm:"uniqueIndex;not null;size:190" json:"email"`
	Password        string `gorm:"not null;size:255" json:"-"`
	Role            Role   `gorm:"index;not null;size:20" json:"role"`
	Department      string `gorm:"size:100" json:"department,omitempty"`
	ThemePreference string `gorm:"size:10;default:'light'" json:"theme_preference"`
	Enabled         bool   `gorm:"default:true" json:"enabled"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
