package testing

import (
	"testing"

	"github.com/arloliu/coldplan/internal/logger"
	"github.com/arloliu/coldplan/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing planner diagnostics during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
