// ABOUTME: Shared fixtures for MCP tool handler tests
// ABOUTME: Builds a seeded service with switchable caller identities
package handlers

import (
	"testing"
	"time"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
	"github.com/harperreed/newsdesk/store"
)

// testIdentity lets a test switch the acting caller between tool calls the
// way the hosting environment switches principals between invocations.
type testIdentity struct {
	caller models.Identity
	now    time.Time
}

func (ti *testIdentity) callCtx() core.Context {
	ti.now = ti.now.Add(time.Second)
	return core.Context{Caller: ti.caller, Now: ti.now}
}

func setupHandlers(t *testing.T) (*core.Service, *testIdentity) {
	t.Helper()
	svc := core.NewService(store.NewTestKV(t))
	ident := &testIdentity{
		caller: "boss",
		now:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	return svc, ident
}

// seedAccounts initializes the owner plus an active author and editor.
func seedAccounts(t *testing.T, svc *core.Service, ident *testIdentity) {
	t.Helper()

	users := NewUserHandlers(svc, ident.callCtx)

	ident.caller = "boss"
	if _, _, err := users.InitOwner(t.Context(), nil, InitOwnerInput{}); err != nil {
		t.Fatalf("init_owner failed: %v", err)
	}

	for _, account := range []struct {
		id, name, role string
	}{
		{"alice", "Alice", models.RoleAuthor},
		{"ed", "Ed", models.RoleEditor},
	} {
		ident.caller = models.Identity(account.id)
		if _, _, err := users.RegisterUser(t.Context(), nil, RegisterUserInput{Name: account.name}); err != nil {
			t.Fatalf("register_user %s failed: %v", account.id, err)
		}

		ident.caller = "boss"
		_, _, err := users.UpdateUser(t.Context(), nil, UpdateUserInput{
			UserID: account.id,
			Name:   account.name,
			Role:   account.role,
			Active: true,
		})
		if err != nil {
			t.Fatalf("update_user %s failed: %v", account.id, err)
		}
	}
}
