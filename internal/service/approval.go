package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// ApprovalService manages profile change requests awaiting admin
// review.
type ApprovalService struct {
	db *gorm.DB
}

// NewApprovalService creates an approval service on the given store.
func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{db: db}
}

// Submit files a change request for later admin review.
func (s *ApprovalService) Submit(userID uint, requestType string, requested, current json.RawMessage) (*model.ProfileApprovalRequest, error) {
	if requestType == "" {
		return nil, fmt.Errorf("%w: request type is required", ErrValidation)
	}
	if len(requested) == 0 || !json.Valid(requested) {
		return nil, fmt.Errorf("%w: requested data must be valid JSON", ErrValidation)
	}
	if len(current) > 0 && !json.Valid(current) {
		return nil, fmt.Errorf("%w: current data must be valid JSON", ErrValidation)
	}

	req := &model.ProfileApprovalRequest{
		UserID:        userID,
		RequestType:   requestType,
		RequestedData: requested,
		CurrentData:   current,
		Status:        model.ApprovalPending,
	}
	if err := s.db.Create(req).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return req, nil
}

// List returns requests, optionally filtered by status, newest first.
func (s *ApprovalService) List(status model.ApprovalStatus) ([]model.ProfileApprovalRequest, error) {
	q := s.db.Order("requested_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reqs []model.ProfileApprovalRequest
	if err := q.Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return reqs, nil
}

// ListByUser returns the user's own requests, newest first.
func (s *ApprovalService) ListByUser(userID uint) ([]model.ProfileApprovalRequest, error) {
	var reqs []model.ProfileApprovalRequest
	err := s.db.Where("user_id = ?", userID).Order("requested_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return reqs, nil
}

// Review approves or rejects a pending request. The decision is
// terminal and records who made it and when.
func (s *ApprovalService) Review(id, reviewerID uint, status model.ApprovalStatus, notes string) (*model.ProfileApprovalRequest, error) {
	if status != model.ApprovalApproved && status != model.ApprovalRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
	}

	var req model.ProfileApprovalRequest
	if err := s.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if req.Status != model.ApprovalPending {
		return nil, fmt.Errorf("%w: request already %s", ErrConflict, req.Status)
	}

	now := time.Now()
	req.Status = status
	req.AdminNotes = notes
	req.ReviewedBy = reviewerID
	req.ReviewedAt = &now
	if err := s.db.Save(&req).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &req, nil
}
