package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// MentorshipService manages mentorship requests from students to
// alumni mentors.
type MentorshipService struct {
	db *gorm.DB
}

// NewMentorshipService creates a mentorship service on the given store.
func NewMentorshipService(db *gorm.DB) *MentorshipService {
	return &MentorshipService{db: db}
}

// Request files a mentorship request. One pending request per
// student/alumni pair.
func (s *MentorshipService) Request(studentID, alumniID uint, message string) (*model.MentorshipRequest, error) {
	if studentID == alumniID {
		return nil, fmt.Errorf("%w: cannot request mentorship from yourself", ErrValidation)
	}

	var alumni model.User
	if err := s.db.First(&alumni, alumniID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: alumni not found", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if alumni.Role != model.RoleAlumni {
		return nil, fmt.Errorf("%w: mentorship can only be requested from alumni", ErrValidation)
	}

	var pending int64
	err := s.db.Model(&model.MentorshipRequest{}).
		Where("student_id = ? AND alumni_id = ? AND status = ?", studentID, alumniID, model.StatusPending).
		Count(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if pending > 0 {
		return nil, fmt.Errorf("%w: a pending mentorship request to this alumni already exists", ErrConflict)
	}

	req := &model.MentorshipRequest{
		StudentID: studentID,
		AlumniID:  alumniID,
		Message:   message,
		Status:    model.StatusPending,
	}
	if err := s.db.Create(req).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return req, nil
}

// ListByStudent returns the student's requests, newest first.
func (s *MentorshipService) ListByStudent(studentID uint) ([]model.MentorshipRequest, error) {
	var reqs []model.MentorshipRequest
	err := s.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return reqs, nil
}

// ListByAlumni returns requests addressed to the alumni, pending first.
func (s *MentorshipService) ListByAlumni(alumniID uint) ([]model.MentorshipRequest, error) {
	var reqs []model.MentorshipRequest
	err := s.db.Where("alumni_id = ?", alumniID).
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END, created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return reqs, nil
}

// Respond accepts or rejects a pending request.
func (s *MentorshipService) Respond(id, alumniID uint, status model.RequestStatus, response string) (*model.MentorshipRequest, error) {
	if status != model.StatusAccepted && status != model.StatusRejected {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", ErrValidation)
	}

	var req model.MentorshipRequest
	if err := s.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if req.AlumniID != alumniID {
		return nil, fmt.Errorf("%w: not the addressed alumni", ErrForbidden)
	}
	if req.Status != model.StatusPending {
		return nil, fmt.Errorf("%w: request already %s", ErrConflict, req.Status)
	}

	req.Status = status
	req.AlumniResponse = response
	if err := s.db.Save(&req).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &req, nil
}
