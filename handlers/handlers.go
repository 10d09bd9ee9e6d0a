// ABOUTME: Shared plumbing for MCP tool handlers
// ABOUTME: Resolves the per-call execution context from the operator identity
package handlers

import (
	"time"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

// ContextFunc supplies the caller identity and timestamp for one invocation.
// The hosting environment owns both; handlers never read ambient globals.
type ContextFunc func() core.Context

// OperatorContext builds a ContextFunc for a fixed local identity stamped with
// wall-clock time per call.
func OperatorContext(identity models.Identity) ContextFunc {
	return func() core.Context {
		return core.Context{Caller: identity, Now: time.Now()}
	}
}
