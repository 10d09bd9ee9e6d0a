// ABOUTME: Test utilities for creating isolated stores
// ABOUTME: Uses temporary directories with BadgerDB for test isolation
package store

import "testing"

// NewTestKV opens a badger store in a temp directory, closed and removed when
// the test finishes.
func NewTestKV(t *testing.T) KV {
	t.Helper()

	kv, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}
	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Logf("Warning: failed to close test store: %v", err)
		}
	})
	return kv
}
