package service

import (
	"errors"
	"testing"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

func TestJobCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	alumni := mustCreateUser(t, db, "poster", model.RoleAlumni)

	job, err := svc.Create(alumni.ID, model.JobPosting{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Build services",
		Domain:      "software",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !job.IsActive {
		t.Errorf("new posting not active")
	}
	if job.PostedBy != alumni.ID {
		t.Errorf("PostedBy = %d, want %d", job.PostedBy, alumni.ID)
	}

	if _, err := svc.Create(alumni.ID, model.JobPosting{Title: "  ", Company: "Acme", Description: "x"}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank title err = %v, want ErrValidation", err)
	}

	jobs, err := svc.ListActive(JobFilter{})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
}

func TestJobListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	alumni := mustCreateUser(t, db, "poster", model.RoleAlumni)

	seed := []model.JobPosting{
		{Title: "Backend Engineer", Company: "Acme", Description: "d", Domain: "software"},
		{Title: "Data Analyst", Company: "Globex", Description: "d", Domain: "data"},
		{Title: "Frontend Engineer", Company: "Acme", Description: "d", Domain: "software"},
	}
	for _, j := range seed {
		if _, err := svc.Create(alumni.ID, j); err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	byDomain, err := svc.ListActive(JobFilter{Domain: "software"})
	if err != nil {
		t.Fatalf("ListActive domain: %v", err)
	}
	if len(byDomain) != 2 {
		t.Errorf("domain filter got %d, want 2", len(byDomain))
	}

	bySearch, err := svc.ListActive(JobFilter{Search: "Globex"})
	if err != nil {
		t.Fatalf("ListActive search: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Company != "Globex" {
		t.Errorf("search filter got %+v", bySearch)
	}
}

func TestJobDeactivatePermissions(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := mustCreateUser(t, db, "poster", model.RoleAlumni)
	intruder := mustCreateUser(t, db, "intruder", model.RoleAlumni)
	admin := mustCreateUser(t, db, "admin", model.RoleAdmin)

	job, err := svc.Create(poster.ID, model.JobPosting{Title: "T", Company: "C", Description: "D"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Deactivate(job.ID, intruder.ID, model.RoleAlumni); !errors.Is(err, ErrForbidden) {
		t.Errorf("intruder deactivate err = %v, want ErrForbidden", err)
	}
	if err := svc.Deactivate(job.ID, admin.ID, model.RoleAdmin); err != nil {
		t.Fatalf("admin deactivate: %v", err)
	}

	jobs, err := svc.ListActive(JobFilter{})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("deactivated job still listed")
	}

	mine, err := svc.ListByPoster(poster.ID)
	if err != nil {
		t.Fatalf("ListByPoster: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("poster's own list hides inactive posting")
	}
}
