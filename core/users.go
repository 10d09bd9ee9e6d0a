// ABOUTME: User account operations
// ABOUTME: Self-registration plus owner-gated account management
package core

import (
	"fmt"

	"github.com/harperreed/newsdesk/models"
)

// CreateUser registers the caller as an author. Accounts start inactive and
// stay that way until the owner flips them on.
func (s *Service) CreateUser(ctx Context, name string) (*models.User, error) {
	exists, err := s.users.Contains(string(ctx.Caller))
	if err != nil {
		return nil, storeErr(err)
	}
	if exists {
		return nil, fmt.Errorf("%w: account %s already registered", ErrBadRequest, ctx.Caller)
	}

	user := &models.User{
		ID:        ctx.Caller,
		Name:      name,
		Role:      models.RoleAuthor,
		Active:    false,
		CreatedAt: ctx.Now,
		UpdatedAt: ctx.Now,
	}
	if err := s.users.Insert(string(ctx.Caller), user); err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

// UpdateUser overwrites name, role, and active status for payload.ID.
// Owner only.
func (s *Service) UpdateUser(ctx Context, payload models.UserPayload) (*models.User, error) {
	if err := s.RequireOwner(ctx.Caller); err != nil {
		return nil, err
	}
	if !models.ValidRole(payload.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrBadRequest, payload.Role)
	}

	user, err := s.users.Get(string(payload.ID))
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, payload.ID)
	}

	user.Name = payload.Name
	user.Role = payload.Role
	user.Active = payload.Active
	user.UpdatedAt = ctx.Now
	if err := s.users.Put(string(payload.ID), user); err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

// ListUsers returns every registered account in store iteration order.
// Owner only.
func (s *Service) ListUsers(ctx Context) ([]models.User, error) {
	if err := s.RequireOwner(ctx.Caller); err != nil {
		return nil, err
	}
	users, err := s.users.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// GetSelf returns the caller's own account record.
func (s *Service) GetSelf(ctx Context) (*models.User, error) {
	return s.RequireRegisteredUser(ctx.Caller)
}
