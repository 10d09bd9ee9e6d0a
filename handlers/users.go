// ABOUTME: Owner and user MCP tool handlers
// ABOUTME: Implements init_owner, register_user, update_user, list_users, whoami
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
)

type UserHandlers struct {
	svc     *core.Service
	callCtx ContextFunc
}

func NewUserHandlers(svc *core.Service, callCtx ContextFunc) *UserHandlers {
	return &UserHandlers{svc: svc, callCtx: callCtx}
}

type InitOwnerInput struct{}

type OwnerOutput struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *UserHandlers) InitOwner(_ context.Context, request *mcp.CallToolRequest, input InitOwnerInput) (*mcp.CallToolResult, OwnerOutput, error) {
	owner, err := h.svc.InitOwner(h.callCtx())
	if err != nil {
		return nil, OwnerOutput{}, fmt.Errorf("failed to initialize owner: %w", err)
	}

	return nil, OwnerOutput{
		ID:        string(owner.ID),
		CreatedAt: owner.CreatedAt.Format(timeFormat),
		UpdatedAt: owner.UpdatedAt.Format(timeFormat),
	}, nil
}

type RegisterUserInput struct {
	Name string `json:"name" jsonschema:"Display name for the new account (required)"`
}

type UserOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *UserHandlers) RegisterUser(_ context.Context, request *mcp.CallToolRequest, input RegisterUserInput) (*mcp.CallToolResult, UserOutput, error) {
	if input.Name == "" {
		return nil, UserOutput{}, fmt.Errorf("name is required")
	}

	user, err := h.svc.CreateUser(h.callCtx(), input.Name)
	if err != nil {
		return nil, UserOutput{}, fmt.Errorf("failed to register user: %w", err)
	}

	return nil, userToOutput(user), nil
}

type UpdateUserInput struct {
	UserID string `json:"user_id" jsonschema:"Identity of the account to update (required)"`
	Name   string `json:"name" jsonschema:"Updated display name"`
	Role   string `json:"role" jsonschema:"Updated role: author or editor"`
	Active bool   `json:"active" jsonschema:"Whether the account may create articles"`
}

func (h *UserHandlers) UpdateUser(_ context.Context, request *mcp.CallToolRequest, input UpdateUserInput) (*mcp.CallToolResult, UserOutput, error) {
	if input.UserID == "" {
		return nil, UserOutput{}, fmt.Errorf("user_id is required")
	}

	user, err := h.svc.UpdateUser(h.callCtx(), models.UserPayload{
		ID:     models.Identity(input.UserID),
		Name:   input.Name,
		Role:   input.Role,
		Active: input.Active,
	})
	if err != nil {
		return nil, UserOutput{}, fmt.Errorf("failed to update user: %w", err)
	}

	return nil, userToOutput(user), nil
}

type ListUsersInput struct{}

type ListUsersOutput struct {
	Users []UserOutput `json:"users"`
}

func (h *UserHandlers) ListUsers(_ context.Context, request *mcp.CallToolRequest, input ListUsersInput) (*mcp.CallToolResult, ListUsersOutput, error) {
	users, err := h.svc.ListUsers(h.callCtx())
	if err != nil {
		return nil, ListUsersOutput{}, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]UserOutput, len(users))
	for i := range users {
		result[i] = userToOutput(&users[i])
	}
	return nil, ListUsersOutput{Users: result}, nil
}

type WhoamiInput struct{}

func (h *UserHandlers) Whoami(_ context.Context, request *mcp.CallToolRequest, input WhoamiInput) (*mcp.CallToolResult, UserOutput, error) {
	user, err := h.svc.GetSelf(h.callCtx())
	if err != nil {
		return nil, UserOutput{}, fmt.Errorf("failed to look up account: %w", err)
	}

	return nil, userToOutput(user), nil
}

func userToOutput(user *models.User) UserOutput {
	return UserOutput{
		ID:        string(user.ID),
		Name:      user.Name,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt.Format(timeFormat),
		UpdatedAt: user.UpdatedAt.Format(timeFormat),
	}
}
