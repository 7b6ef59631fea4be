package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// ProfileService manages the student and alumni profile tables.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a profile service on the given store.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetStudentProfile returns the profile owned by userID.
func (s *ProfileService) GetStudentProfile(userID uint) (*model.StudentProfile, error) {
	var p model.StudentProfile
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &p, nil
}

// UpsertStudentProfile creates or replaces the caller's profile fields.
func (s *ProfileService) UpsertStudentProfile(userID uint, in model.StudentProfile) (*model.StudentProfile, error) {
	in.UserID = userID

	var existing model.StudentProfile
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&in).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return &in, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&in).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &in, nil
}

// GetAlumniProfile returns the profile owned by userID.
func (s *ProfileService) GetAlumniProfile(userID uint) (*model.AlumniProfile, error) {
	var p model.AlumniProfile
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &p, nil
}

// UpsertAlumniProfile creates or replaces the caller's profile fields.
func (s *ProfileService) UpsertAlumniProfile(userID uint, in model.AlumniProfile) (*model.AlumniProfile, error) {
	in.UserID = userID

	var existing model.AlumniProfile
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&in).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return &in, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&in).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &in, nil
}

// ListMentors returns alumni profiles currently open to mentorship.
func (s *ProfileService) ListMentors() ([]model.AlumniProfile, error) {
	var mentors []model.AlumniProfile
	err := s.db.Where("mentor_available = ?", true).
		Order("experience_years DESC").
		Find(&mentors).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return mentors, nil
}
