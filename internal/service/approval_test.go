package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

func TestApprovalSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewApprovalService(db)
	student := mustCreateUser(t, db, "applicant", model.RoleStudent)

	valid := json.RawMessage(`{"department":"CSE"}`)

	if _, err := svc.Submit(student.ID, "", valid, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("empty type err = %v, want ErrValidation", err)
	}
	if _, err := svc.Submit(student.ID, "profile_update", nil, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("empty payload err = %v, want ErrValidation", err)
	}
	if _, err := svc.Submit(student.ID, "profile_update", json.RawMessage(`{broken`), nil); !errors.Is(err, ErrValidation) {
		t.Errorf("invalid payload err = %v, want ErrValidation", err)
	}
	if _, err := svc.Submit(student.ID, "profile_update", valid, json.RawMessage(`{broken`)); !errors.Is(err, ErrValidation) {
		t.Errorf("invalid current err = %v, want ErrValidation", err)
	}

	req, err := svc.Submit(student.ID, "profile_update", valid, json.RawMessage(`{"department":"ECE"}`))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if req.Status != model.ApprovalPending {
		t.Errorf("Status = %q, want pending", req.Status)
	}
}

func TestApprovalReviewTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := NewApprovalService(db)
	student := mustCreateUser(t, db, "applicant", model.RoleStudent)
	admin := mustCreateUser(t, db, "reviewer", model.RoleAdmin)

	req, err := svc.Submit(student.ID, "profile_update", json.RawMessage(`{"department":"CSE"}`), nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.Review(req.ID, admin.ID, model.ApprovalPending, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("pending decision err = %v, want ErrValidation", err)
	}
	if _, err := svc.Review(999, admin.ID, model.ApprovalApproved, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing request err = %v, want ErrNotFound", err)
	}

	got, err := svc.Review(req.ID, admin.ID, model.ApprovalApproved, "looks fine")
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if got.ReviewedBy != admin.ID || got.ReviewedAt == nil {
		t.Errorf("review audit fields not set: %+v", got)
	}

	if _, err := svc.Review(req.ID, admin.ID, model.ApprovalRejected, ""); !errors.Is(err, ErrConflict) {
		t.Errorf("re-review err = %v, want ErrConflict", err)
	}
}

func TestApprovalListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewApprovalService(db)
	a := mustCreateUser(t, db, "first", model.RoleStudent)
	b := mustCreateUser(t, db, "second", model.RoleAlumni)
	admin := mustCreateUser(t, db, "reviewer", model.RoleAdmin)

	r1, err := svc.Submit(a.ID, "profile_update", json.RawMessage(`{"a":1}`), nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.Submit(b.ID, "profile_update", json.RawMessage(`{"b":2}`), nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.Review(r1.ID, admin.ID, model.ApprovalRejected, ""); err != nil {
		t.Fatalf("Review: %v", err)
	}

	pending, err := svc.List(model.ApprovalPending)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pending) != 1 || pending[0].UserID != b.ID {
		t.Errorf("pending filter got %+v", pending)
	}

	all, err := svc.List("")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d requests, want 2", len(all))
	}

	mine, err := svc.ListByUser(a.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != r1.ID {
		t.Errorf("ListByUser got %+v", mine)
	}
}
