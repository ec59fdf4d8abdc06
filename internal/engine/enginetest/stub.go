// Package enginetest provides an in-process engine.Invoker for tests.
package enginetest

import (
	"context"
	"os"
	"sync"

	"github.com/ToderitaLoredana/PlaneBooking/internal/engine"
)

// Stub records every invocation and optionally writes a canned result to the
// invocation's output file, the way the real engine would.
type Stub struct {
	// Result is written to OutputFile when non-empty.
	Result string
	// Outcome is returned from Invoke. The zero value is reported as success.
	Outcome engine.Outcome
	// OnInvoke, when set, runs before the result is written.
	OnInvoke func(inv engine.Invocation)

	mu    sync.Mutex
	calls []engine.Invocation
}

func (s *Stub) Invoke(_ context.Context, inv engine.Invocation) engine.Outcome {
	s.mu.Lock()
	s.calls = append(s.calls, inv)
	s.mu.Unlock()

	if s.OnInvoke != nil {
		s.OnInvoke(inv)
	}
	if s.Result != "" {
		if err := os.WriteFile(inv.OutputFile, []byte(s.Result), 0o644); err != nil {
			return engine.Failure(1)
		}
	}
	if s.Outcome.Kind == "" {
		return engine.Success()
	}
	return s.Outcome
}

// Calls returns a copy of the recorded invocations.
func (s *Stub) Calls() []engine.Invocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]engine.Invocation(nil), s.calls...)
}
