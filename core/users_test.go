// ABOUTME: Tests for user registration and owner-gated account management
// ABOUTME: Covers duplicate registration, role/status updates, and guards
package core

import (
	"errors"
	"testing"

	"github.com/harperreed/newsdesk/models"
)

func TestCreateUser(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.CreateUser(at("alice", 1), "Alice")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID != "alice" || user.Name != "Alice" {
		t.Errorf("Unexpected user: %+v", user)
	}
	if user.Role != models.RoleAuthor {
		t.Errorf("New accounts must register as author, got %s", user.Role)
	}
	if user.Active {
		t.Error("New accounts must start inactive")
	}
}

func TestCreateUserDuplicateFails(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CreateUser(at("alice", 1), "Alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := svc.CreateUser(at("alice", 2), "Alice Again")
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("Expected ErrBadRequest, got %v", err)
	}

	// Original record must be untouched
	user, err := svc.GetSelf(at("alice", 3))
	if err != nil {
		t.Fatalf("GetSelf failed: %v", err)
	}
	if user.Name != "Alice" {
		t.Errorf("Expected original name to survive, got %q", user.Name)
	}
}

func TestUpdateUser(t *testing.T) {
	svc := newTestService(t)
	setupOwner(t, svc, "boss")

	if _, err := svc.CreateUser(at("alice", 1), "Alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	updated, err := svc.UpdateUser(at("boss", 5), models.UserPayload{
		ID:     "alice",
		Name:   "Alice B",
		Role:   models.RoleEditor,
		Active: true,
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Name != "Alice B" || updated.Role != models.RoleEditor || !updated.Active {
		t.Errorf("Unexpected update result: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("UpdatedAt was not bumped")
	}
}

func TestUpdateUserRequiresOwner(t *testing.T) {
	svc := newTestService(t)
	setupOwner(t, svc, "boss")

	if _, err := svc.CreateUser(at("alice", 1), "Alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// alice cannot promote herself
	_, err := svc.UpdateUser(at("alice", 2), models.UserPayload{
		ID:     "alice",
		Name:   "Alice",
		Role:   models.RoleEditor,
		Active: true,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Expected ErrForbidden, got %v", err)
	}
}

func TestUpdateUserUnknownTarget(t *testing.T) {
	svc := newTestService(t)
	setupOwner(t, svc, "boss")

	_, err := svc.UpdateUser(at("boss", 1), models.UserPayload{
		ID:   "ghost",
		Name: "Ghost",
		Role: models.RoleAuthor,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	svc := newTestService(t)
	setupOwner(t, svc, "boss")

	if _, err := svc.CreateUser(at("alice", 1), "Alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := svc.UpdateUser(at("boss", 2), models.UserPayload{
		ID:   "alice",
		Name: "Alice",
		Role: "admin",
	})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("Expected ErrBadRequest, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	svc := newTestService(t)
	setupOwner(t, svc, "boss")

	for _, id := range []string{"alice", "bob"} {
		if _, err := svc.CreateUser(at(id, 1), id); err != nil {
			t.Fatalf("CreateUser %s failed: %v", id, err)
		}
	}

	users, err := svc.ListUsers(at("boss", 2))
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}

	_, err = svc.ListUsers(at("alice", 3))
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestGetSelf(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetSelf(at("stranger", 1))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}

	if _, err := svc.CreateUser(at("alice", 1), "Alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, err := svc.GetSelf(at("alice", 2))
	if err != nil {
		t.Fatalf("GetSelf failed: %v", err)
	}
	if user.ID != "alice" {
		t.Errorf("Expected alice, got %s", user.ID)
	}
}
