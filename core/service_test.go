// ABOUTME: Shared test fixtures for content store operations
// ABOUTME: Builds services on a temp-dir store with deterministic ids and clocks
package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/harperreed/newsdesk/models"
	"github.com/harperreed/newsdesk/store"
)

var testEpoch = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc := NewService(store.NewTestKV(t))

	// Deterministic ids so tests can assert on them
	var articles, categories int
	svc.newArticleID = func() string {
		articles++
		return fmt.Sprintf("article-%03d", articles)
	}
	svc.newCategoryID = func() string {
		categories++
		return fmt.Sprintf("category-%03d", categories)
	}
	return svc
}

// at builds an execution context for caller, sec seconds after the test epoch.
func at(caller string, sec int) Context {
	return Context{
		Caller: models.Identity(caller),
		Now:    testEpoch.Add(time.Duration(sec) * time.Second),
	}
}

// setupOwner initializes the owner identity for a test store.
func setupOwner(t *testing.T, svc *Service, owner string) {
	t.Helper()
	if _, err := svc.InitOwner(at(owner, 0)); err != nil {
		t.Fatalf("InitOwner failed: %v", err)
	}
}

// setupUser registers an account and has the owner set its role and status.
func setupUser(t *testing.T, svc *Service, owner, id, name, role string, active bool) {
	t.Helper()
	if _, err := svc.CreateUser(at(id, 1), name); err != nil {
		t.Fatalf("CreateUser %s failed: %v", id, err)
	}
	_, err := svc.UpdateUser(at(owner, 2), models.UserPayload{
		ID:     models.Identity(id),
		Name:   name,
		Role:   role,
		Active: active,
	})
	if err != nil {
		t.Fatalf("UpdateUser %s failed: %v", id, err)
	}
}
