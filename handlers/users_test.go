// ABOUTME: Tests for owner and user MCP tool handlers
// ABOUTME: Validates tool input/output and error handling
package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOwnerTool(t *testing.T) {
	svc, ident := setupHandlers(t)
	users := NewUserHandlers(svc, ident.callCtx)

	_, out, err := users.InitOwner(t.Context(), nil, InitOwnerInput{})
	require.NoError(t, err)
	assert.Equal(t, "boss", out.ID)
	assert.NotEmpty(t, out.CreatedAt)

	// Second initialization is rejected
	_, _, err = users.InitOwner(t.Context(), nil, InitOwnerInput{})
	assert.Error(t, err)
}

func TestRegisterUserTool(t *testing.T) {
	svc, ident := setupHandlers(t)
	users := NewUserHandlers(svc, ident.callCtx)

	ident.caller = "alice"
	_, out, err := users.RegisterUser(t.Context(), nil, RegisterUserInput{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.ID)
	assert.Equal(t, "author", out.Role)
	assert.False(t, out.Active)

	// Name is required
	_, _, err = users.RegisterUser(t.Context(), nil, RegisterUserInput{})
	assert.Error(t, err)
}

func TestUpdateUserToolRequiresID(t *testing.T) {
	svc, ident := setupHandlers(t)
	users := NewUserHandlers(svc, ident.callCtx)

	_, _, err := users.UpdateUser(t.Context(), nil, UpdateUserInput{Name: "X"})
	assert.Error(t, err)
}

func TestListUsersAndWhoamiTools(t *testing.T) {
	svc, ident := setupHandlers(t)
	seedAccounts(t, svc, ident)
	users := NewUserHandlers(svc, ident.callCtx)

	ident.caller = "boss"
	_, list, err := users.ListUsers(t.Context(), nil, ListUsersInput{})
	require.NoError(t, err)
	assert.Len(t, list.Users, 2)

	ident.caller = "alice"
	_, me, err := users.Whoami(t.Context(), nil, WhoamiInput{})
	require.NoError(t, err)
	assert.Equal(t, "alice", me.ID)
	assert.True(t, me.Active)

	// Non-owner cannot list accounts
	_, _, err = users.ListUsers(t.Context(), nil, ListUsersInput{})
	assert.Error(t, err)
}
