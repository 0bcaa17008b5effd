package cache

import (
	"testing"

	"go.uber.org/goleak"
)

// The cache must never spawn goroutines of its own: all operations are
// synchronous, including callback dispatch.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
