package service

import (
	"context"
	"errors"
	"testing"

	"github.com/door2door/taskmarket-api/internal/core/domain"
)

func TestProfileService_Update_Success(t *testing.T) {
	users := newStubUserRepo()
	users.add("alice@example.com", "", "")
	svc := NewProfileService(users, discardLogger)

	updated, err := svc.Update(context.Background(), "alice@example.com", "Alice", "+1555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Alice" || updated.Phone != "+1555" {
		t.Errorf("returned user not updated: %+v", updated)
	}

	stored := users.byEmail["alice@example.com"]
	if stored.Name != "Alice" || stored.Phone != "+1555" {
		t.Errorf("persisted user not updated: %+v", stored)
	}
	if !stored.IsProfileComplete() {
		t.Error("profile must be complete after filling name and phone")
	}
}

func TestProfileService_Update_PreservesIdentity(t *testing.T) {
	users := newStubUserRepo()
	original := users.add("alice@example.com", "Alice", "+1555")
	svc := NewProfileService(users, discardLogger)

	updated, err := svc.Update(context.Background(), "alice@example.com", "Alicia", "+1666")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != original.ID {
		t.Errorf("id must not change: got %d, want %d", updated.ID, original.ID)
	}
	if updated.Email != "alice@example.com" {
		t.Errorf("email must not change: got %q", updated.Email)
	}
}

func TestProfileService_Update_UnknownUser_Rejected(t *testing.T) {
	users := newStubUserRepo()
	svc := NewProfileService(users, discardLogger)

	_, err := svc.Update(context.Background(), "ghost@example.com", "Ghost", "+0")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(users.byEmail) != 0 {
		t.Errorf("no record may be created, got %d", len(users.byEmail))
	}
}

func TestProfileService_Update_BlankFieldsMakeProfileIncomplete(t *testing.T) {
	users := newStubUserRepo()
	users.add("alice@example.com", "Alice", "+1555")
	svc := NewProfileService(users, discardLogger)

	updated, err := svc.Update(context.Background(), "alice@example.com", "Alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsProfileComplete() {
		t.Error("blank phone must make the profile incomplete again")
	}
}

func TestProfileService_Get(t *testing.T) {
	users := newStubUserRepo()
	users.add("alice@example.com", "Alice", "+1555")
	svc := NewProfileService(users, discardLogger)

	user, err := svc.Get(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	if _, err := svc.Get(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
