// ABOUTME: Authorization rules over owner and user records
// ABOUTME: Pure guards with no side effects
package core

import (
	"fmt"

	"github.com/harperreed/newsdesk/models"
)

// IsOwner reports whether identity holds an owner record.
func (s *Service) IsOwner(identity models.Identity) (bool, error) {
	ok, err := s.owners.Contains(string(identity))
	if err != nil {
		return false, storeErr(err)
	}
	return ok, nil
}

// RequireOwner fails with ErrForbidden when identity is not the owner.
func (s *Service) RequireOwner(identity models.Identity) error {
	ok, err := s.IsOwner(identity)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: owner access required", ErrForbidden)
	}
	return nil
}

// RequireRegisteredUser returns the caller's account, failing with
// ErrUnauthorized when none exists.
func (s *Service) RequireRegisteredUser(identity models.Identity) (*models.User, error) {
	user, err := s.users.Get(string(identity))
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no account for %s", ErrUnauthorized, identity)
	}
	return user, nil
}

// RequireActiveUser returns the caller's account, failing with ErrForbidden
// when the owner has not activated it.
func (s *Service) RequireActiveUser(identity models.Identity) (*models.User, error) {
	user, err := s.RequireRegisteredUser(identity)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: account %s is inactive", ErrForbidden, identity)
	}
	return user, nil
}
