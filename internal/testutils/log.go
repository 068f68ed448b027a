// Package testutils provides helper functions for testing.
package testutils

import (
	"context"
	"log/slog"
)

// MockHandler is a slog handler recording every call for later assertions.
type MockHandler struct {
	HandleCalls []slog.Record
}

// NewMockHandler returns a new MockHandler.
func NewMockHandler() *MockHandler {
	return &MockHandler{HandleCalls: make([]slog.Record, 0)}
}

// Enabled implements Handler.Enabled; every level is enabled.
func (h *MockHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle implements Handler.Handle.
func (h *MockHandler) Handle(_ context.Context, record slog.Record) error {
	h.HandleCalls = append(h.HandleCalls, record)
	return nil
}

// WithAttrs implements Handler.WithAttrs.
func (h *MockHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements Handler.WithGroup.
func (h *MockHandler) WithGroup(_ string) slog.Handler {
	return h
}

// CountLevel returns how many records were logged at the given level.
func (h *MockHandler) CountLevel(level slog.Level) uint {
	var n uint
	for _, r := range h.HandleCalls {
		if r.Level == level {
			n++
		}
	}
	return n
}
