package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// ReferralService manages referral requests from students to the
// alumni who posted a job.
type ReferralService struct {
	db *gorm.DB
}

// NewReferralService creates a referral service on the given store.
func NewReferralService(db *gorm.DB) *ReferralService {
	return &ReferralService{db: db}
}

// Request files a referral request for a job. The responder is the
// job's poster. One pending request per student and job.
func (s *ReferralService) Request(studentID, jobID uint, message string) (*model.Referral, error) {
	var job model.JobPosting
	if err := s.db.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job not found", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if !job.IsActive {
		return nil, fmt.Errorf("%w: job is no longer active", ErrValidation)
	}
	if job.PostedBy == studentID {
		return nil, fmt.Errorf("%w: cannot request a referral on your own posting", ErrValidation)
	}

	var pending int64
	err := s.db.Model(&model.Referral{}).
		Where("student_id = ? AND job_id = ? AND status = ?", studentID, jobID, model.StatusPending).
		Count(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if pending > 0 {
		return nil, fmt.Errorf("%w: a pending referral request for this job already exists", ErrConflict)
	}

	ref := &model.Referral{
		JobID:     jobID,
		StudentID: studentID,
		AlumniID:  job.PostedBy,
		Message:   message,
		Status:    model.StatusPending,
	}
	if err := s.db.Create(ref).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return ref, nil
}

// ListByStudent returns the student's requests, newest first.
func (s *ReferralService) ListByStudent(studentID uint) ([]model.Referral, error) {
	var refs []model.Referral
	err := s.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return refs, nil
}

// ListByAlumni returns requests addressed to the alumni, pending first.
func (s *ReferralService) ListByAlumni(alumniID uint) ([]model.Referral, error) {
	var refs []model.Referral
	err := s.db.Where("alumni_id = ?", alumniID).
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END, created_at DESC").
		Find(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return refs, nil
}

// Respond accepts or rejects a pending request. Only the addressed
// alumni may respond, and a decided request stays decided.
func (s *ReferralService) Respond(id, alumniID uint, status model.RequestStatus, response string) (*model.Referral, error) {
	if status != model.StatusAccepted && status != model.StatusRejected {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", ErrValidation)
	}

	var ref model.Referral
	if err := s.db.First(&ref, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if ref.AlumniID != alumniID {
		return nil, fmt.Errorf("%w: not the addressed alumni", ErrForbidden)
	}
	if ref.Status != model.StatusPending {
		return nil, fmt.Errorf("%w: request already %s", ErrConflict, ref.Status)
	}

	ref.Status = status
	ref.AlumniResponse = response
	if err := s.db.Save(&ref).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &ref, nil
}
