package reducekit

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures the store never leaves goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
