package service

import (
	"errors"
	"testing"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Register(NewUser{
		FullName:   "Jane Doe",
		Email:      "Jane@Example.COM",
		Password:   "secret123",
		Role:       model.RoleStudent,
		Department: "CSE",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("role = %q", user.Role)
	}

	got, err := svc.Authenticate("jane@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated wrong account")
	}

	if _, err := svc.Authenticate("jane@example.com", "wrong"); err == nil {
		t.Errorf("wrong password accepted")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	cases := []struct {
		name string
		in   NewUser
	}{
		{"empty name", NewUser{Email: "a@b.c", Password: "secret123", Role: model.RoleStudent}},
		{"bad email", NewUser{FullName: "A", Email: "not-an-email", Password: "secret123", Role: model.RoleStudent}},
		{"short password", NewUser{FullName: "A", Email: "a@b.c", Password: "123", Role: model.RoleStudent}},
		{"unknown role", NewUser{FullName: "A", Email: "a@b.c", Password: "secret123", Role: "wizard"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(tc.in); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	nu := NewUser{FullName: "A", Email: "dup@test.local", Password: "secret123", Role: model.RoleAlumni}
	if _, err := svc.Register(nu); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(nu); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate register err = %v, want ErrConflict", err)
	}
}

func TestAuthenticateDisabledAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := mustCreateUser(t, db, "blocked", model.RoleStudent)
	if err := db.Model(&user).Update("enabled", false).Error; err != nil {
		t.Fatalf("disable: %v", err)
	}

	if _, err := svc.Authenticate(user.Email, "secret123"); !errors.Is(err, ErrForbidden) {
		t.Errorf("disabled login err = %v, want ErrForbidden", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := mustCreateUser(t, db, "changer", model.RoleAlumni)

	if err := svc.ChangePassword(user.ID, "wrong", "newsecret"); !errors.Is(err, ErrValidation) {
		t.Errorf("wrong old password err = %v, want ErrValidation", err)
	}
	if err := svc.ChangePassword(user.ID, "secret123", "newsecret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := svc.Authenticate(user.Email, "newsecret"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

func TestSetEnabledAndTheme(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := mustCreateUser(t, db, "tweaked", model.RoleStudent)

	if err := svc.SetEnabled(user.ID, false); err != nil {
		t.Fatalf("SetEnabled: %v", err)
	}
	if err := svc.SetEnabled(9999, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user err = %v, want ErrNotFound", err)
	}

	if err := svc.SetThemePreference(user.ID, "dark"); err != nil {
		t.Fatalf("SetThemePreference: %v", err)
	}
	if err := svc.SetThemePreference(user.ID, "neon"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad theme err = %v, want ErrValidation", err)
	}

	got, err := svc.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Enabled {
		t.Errorf("account still enabled")
	}
	if got.ThemePreference != "dark" {
		t.Errorf("theme = %q, want dark", got.ThemePreference)
	}
}
