package engine

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"time"

	"github.com/armon/circbuf"
)

const (
	// outputTailBytes bounds how much engine console output is kept per stream.
	outputTailBytes = 4096
	// waitDelay bounds how long Wait blocks on inherited pipes after the child is killed.
	waitDelay = 2 * time.Second
)

// Invoker launches the external search engine for one invocation.
type Invoker interface {
	Invoke(ctx context.Context, inv Invocation) Outcome
}

// ExecInvoker runs the engine as a child process and blocks until it exits.
type ExecInvoker struct {
	// Timeout kills the engine once elapsed. Zero waits forever.
	Timeout time.Duration
}

func NewExecInvoker(timeout time.Duration) *ExecInvoker {
	return &ExecInvoker{Timeout: timeout}
}

// Invoke never retries. Cancelling ctx kills the child process.
func (e *ExecInvoker) Invoke(ctx context.Context, inv Invocation) Outcome {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	args := inv.Args()
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	// Only errors for a non-positive size.
	stdout, _ := circbuf.NewBuffer(outputTailBytes)
	stderr, _ := circbuf.NewBuffer(outputTailBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	out := Outcome{
		Duration: time.Since(start),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	classify(&out, ctx, err)
	return out
}

func classify(out *Outcome, ctx context.Context, err error) {
	if err == nil {
		out.Kind = KindSuccess
		return
	}
	out.cause = err
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		out.Kind = KindExecutableNotFound
		out.ExitCode = -1
		return
	}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		out.Kind = KindTimeout
		out.ExitCode = -1
		return
	case errors.Is(ctx.Err(), context.Canceled):
		out.Kind = KindCanceled
		out.ExitCode = -1
		return
	}
	out.Kind = KindEngineFailure
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return
	}
	out.ExitCode = -1
}
