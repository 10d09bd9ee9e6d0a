// ABOUTME: Owner initialization
// ABOUTME: First caller claims the single owner slot
package core

import (
	"fmt"

	"github.com/harperreed/newsdesk/models"
)

// InitOwner creates the owner record for the caller. The store holds exactly
// one owner; every call after the first fails regardless of caller.
func (s *Service) InitOwner(ctx Context) (*models.Owner, error) {
	empty, err := s.owners.Empty()
	if err != nil {
		return nil, storeErr(err)
	}
	if !empty {
		return nil, fmt.Errorf("%w: owner already initialized", ErrBadRequest)
	}

	owner := &models.Owner{
		ID:        ctx.Caller,
		CreatedAt: ctx.Now,
		UpdatedAt: ctx.Now,
	}
	if err := s.owners.Insert(string(ctx.Caller), owner); err != nil {
		return nil, storeErr(err)
	}
	return owner, nil
}
