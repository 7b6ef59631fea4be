package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// JobFilter narrows the active job listing.
type JobFilter struct {
	Search string // matches title or company
	Domain string
}

// JobService manages job postings.
type JobService struct {
	db *gorm.DB
}

// NewJobService creates a job service on the given store.
func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// Create validates and stores a new posting owned by postedBy.
func (s *JobService) Create(postedBy uint, in model.JobPosting) (*model.JobPosting, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" || in.Company == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: title, company and description are required", ErrValidation)
	}

	in.ID = 0
	in.PostedBy = postedBy
	in.IsActive = true
	if err := s.db.Create(&in).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &in, nil
}

// ListActive returns active postings, newest first, optionally filtered.
func (s *JobService) ListActive(f JobFilter) ([]model.JobPosting, error) {
	q := s.db.Where("is_active = ?", true).Order("created_at DESC")
	if f.Domain != "" {
		q = q.Where("domain = ?", f.Domain)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR company LIKE ?", like, like)
	}

	var jobs []model.JobPosting
	if err := q.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return jobs, nil
}

// ListByPoster returns every posting owned by the user, active or not.
func (s *JobService) ListByPoster(userID uint) ([]model.JobPosting, error) {
	var jobs []model.JobPosting
	err := s.db.Where("posted_by = ?", userID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return jobs, nil
}

// GetByID looks up one posting.
func (s *JobService) GetByID(id uint) (*model.JobPosting, error) {
	var job model.JobPosting
	if err := s.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &job, nil
}

// Deactivate hides a posting from the board. Only the poster or an
// admin may do this.
func (s *JobService) Deactivate(id, callerID uint, callerRole model.Role) error {
	job, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if job.PostedBy != callerID && callerRole != model.RoleAdmin {
		return fmt.Errorf("%w: only the poster or an admin may deactivate a job", ErrForbidden)
	}
	if err := s.db.Model(job).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return nil
}
