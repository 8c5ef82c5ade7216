// Package testutil provides shared test doubles and helpers.
package testutil

import (
	"math/rand"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestLogger returns a logger that discards everything
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewObservedLogger returns a logger whose entries can be inspected
func NewObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// NewTestRand returns a deterministic random source
func NewTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}
