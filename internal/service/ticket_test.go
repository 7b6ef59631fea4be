package service

import (
	"errors"
	"testing"
	"time"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

func TestTicketCreateAndUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)
	student := mustCreateUser(t, db, "reporter", model.RoleStudent)

	if _, err := svc.Create(student.ID, "  ", "broken"); !errors.Is(err, ErrValidation) {
		t.Errorf("blank title err = %v, want ErrValidation", err)
	}

	ticket, err := svc.Create(student.ID, "Login broken", "cannot sign in")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ticket.Status != model.TicketOpen {
		t.Errorf("Status = %q, want open", ticket.Status)
	}

	if _, err := svc.Update(ticket.ID, "closed", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown status err = %v, want ErrValidation", err)
	}
	if _, err := svc.Update(999, model.TicketResolved, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing ticket err = %v, want ErrNotFound", err)
	}

	got, err := svc.Update(ticket.ID, model.TicketResolved, "fixed in latest deploy")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != model.TicketResolved || got.AdminResponse == "" {
		t.Errorf("updated ticket = %+v", got)
	}
}

func TestTicketListAllOpenFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)
	a := mustCreateUser(t, db, "first", model.RoleStudent)
	b := mustCreateUser(t, db, "second", model.RoleAlumni)

	resolved, err := svc.Create(a.ID, "Old issue", "long fixed")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Update(resolved.ID, model.TicketResolved, "done"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// Keep creation times apart so ordering is stable on the second key.
	time.Sleep(10 * time.Millisecond)
	open, err := svc.Create(b.ID, "New issue", "still broken")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d tickets, want 2", len(all))
	}
	if all[0].ID != open.ID {
		t.Errorf("open ticket not listed first: %+v", all)
	}

	mine, err := svc.ListByUser(a.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != resolved.ID {
		t.Errorf("ListByUser got %+v", mine)
	}
}
