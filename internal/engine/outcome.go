package engine

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies how an engine invocation ended.
type Kind string

const (
	KindSuccess            Kind = "success"
	KindEngineFailure      Kind = "engine_failure"
	KindExecutableNotFound Kind = "executable_not_found"
	KindTimeout            Kind = "timeout"
	KindCanceled           Kind = "canceled"
)

var (
	ErrExecutableNotFound = errors.New("engine executable not found")
	ErrEngineTimeout      = errors.New("engine timed out")
	ErrEngineCanceled     = errors.New("engine invocation canceled")
)

// EngineFailureError is returned by Outcome.Err when the engine exited non-zero.
type EngineFailureError struct {
	ExitCode int
	Err      error
}

func (e *EngineFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine exited with code %d: %v", e.ExitCode, e.Err)
	}
	return fmt.Sprintf("engine exited with code %d", e.ExitCode)
}

func (e *EngineFailureError) Unwrap() error {
	return e.Err
}

// Outcome is the result of a single Invoke call.
type Outcome struct {
	Kind     Kind
	ExitCode int
	Duration time.Duration
	// Stdout and Stderr hold the tail of the engine's console output.
	Stdout string
	Stderr string

	cause error
}

// Succeeded reports whether the engine exited with status 0.
func (o Outcome) Succeeded() bool {
	return o.Kind == KindSuccess
}

// Err converts a non-successful outcome into an error. It returns nil on success.
func (o Outcome) Err() error {
	switch o.Kind {
	case KindSuccess:
		return nil
	case KindExecutableNotFound:
		if o.cause != nil {
			return fmt.Errorf("%w: %v", ErrExecutableNotFound, o.cause)
		}
		return ErrExecutableNotFound
	case KindTimeout:
		return fmt.Errorf("%w after %s", ErrEngineTimeout, o.Duration.Round(time.Millisecond))
	case KindCanceled:
		return ErrEngineCanceled
	default:
		return &EngineFailureError{ExitCode: o.ExitCode, Err: o.cause}
	}
}

// Success builds a successful outcome. Useful for Invoker stubs.
func Success() Outcome {
	return Outcome{Kind: KindSuccess}
}

// Failure builds a non-zero exit outcome. Useful for Invoker stubs.
func Failure(exitCode int) Outcome {
	return Outcome{Kind: KindEngineFailure, ExitCode: exitCode}
}
