package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// NewUser carries the fields needed to register an account.
type NewUser struct {
	FullName   string
	Email      string
	Password   string
	Role       model.Role
	Department string
}

// UserService manages accounts and authentication checks.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a user service on the given store.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account. The role is fixed here and never
// changes afterwards.
func (s *UserService) Register(nu NewUser) (*model.User, error) {
	nu.FullName = strings.TrimSpace(nu.FullName)
	nu.Email = strings.ToLower(strings.TrimSpace(nu.Email))

	if nu.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if nu.Email == "" || !strings.Contains(nu.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(nu.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if !model.ValidRole(nu.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, nu.Role)
	}

	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", nu.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: a user with this email already exists", ErrConflict)
	}

	user := &model.User{
		FullName:   nu.FullName,
		Email:      nu.Email,
		Role:       nu.Role,
		Department: nu.Department,
		Enabled:    true,
	}
	if err := user.SetPassword(nu.Password); err != nil {
		return nil, err
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return user, nil
}

// Authenticate checks credentials and returns the account. Disabled
// accounts fail with ErrForbidden.
func (s *UserService) Authenticate(email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if !user.Enabled {
		return nil, fmt.Errorf("%w: account disabled", ErrForbidden)
	}
	if !user.CheckPassword(password) {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetByID looks up one account.
func (s *UserService) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &user, nil
}

// ListByRole returns all accounts with the given role, newest first.
// An empty role returns everyone.
func (s *UserService) ListByRole(role model.Role) ([]model.User, error) {
	q := s.db.Order("created_at DESC")
	if role != "" {
		if !model.ValidRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
		}
		q = q.Where("role = ?", role)
	}
	var users []model.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return users, nil
}

// SetEnabled enables or disables an account.
func (s *UserService) SetEnabled(id uint, enabled bool) error {
	res := s.db.Model(&model.User{}).Where("id = ?", id).Update("enabled", enabled)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ChangePassword verifies the old password and stores a new one.
func (s *UserService) ChangePassword(id uint, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !user.CheckPassword(oldPassword) {
		return fmt.Errorf("%w: old password is incorrect", ErrValidation)
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.db.Save(user).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return nil
}

// SetThemePreference persists the user's light/dark choice.
func (s *UserService) SetThemePreference(id uint, theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("%w: theme must be light or dark", ErrValidation)
	}
	res := s.db.Model(&model.User{}).Where("id = ?", id).Update("theme_preference", theme)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
