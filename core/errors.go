// ABOUTME: Tagged error kinds shared by every operation
// ABOUTME: Callers branch on kind with errors.Is
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a caller with no registered account.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a caller lacking the role or ownership for an action.
	ErrForbidden = errors.New("forbidden")

	// ErrBadRequest marks an operation invalid in the current state, such as
	// double initialization or duplicate registration.
	ErrBadRequest = errors.New("bad request")

	// ErrInternal wraps unexpected storage or encoding failures.
	ErrInternal = errors.New("internal error")
)

// storeErr tags an unexpected storage failure as internal. Precondition
// failures never reach here; by the time a write can fail, all checks have
// already passed.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
