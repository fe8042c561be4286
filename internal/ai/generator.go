package ai

import (
	"context"
	"time"
)

// Completer turns one instruction into generated source text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Generator struct {
	completer Completer
	useMock   bool
	// timeout bounds each Complete call; zero means no limit.
	timeout time.Duration
}

// NewGenerator builds a generator. With useMock set the completer is never
// called and may be nil.
func NewGenerator(completer Completer, useMock bool, timeout time.Duration) *Generator {
	return &Generator{
		completer: completer,
		useMock:   useMock,
		timeout:   timeout,
	}
}

// MockMode reports whether canned templates are used instead of a model.
func (g *Generator) MockMode() bool { return g.useMock }
