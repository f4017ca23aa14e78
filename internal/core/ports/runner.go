// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/tanji-dg/cmt/internal/core/domain"
)

// ExecOptions configures one subprocess invocation.
type ExecOptions struct {
	// Dir is the working directory for the child process.
	Dir string
	// Env holds extra environment variables merged over the host's.
	Env map[string]string
	// Wrapper is prepended to the argv on non-Windows hosts so the
	// child's stdout and stderr are unbuffered at the OS level.
	Wrapper []string
}

// Runner spawns external executables and demultiplexes their output into
// a line-buffered event stream.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Execute spawns command with args. The consumer, when non-nil,
	// receives every complete output line while the process runs. A
	// spawn failure is returned as an error; anything after a
	// successful spawn is reported through the Subprocess.
	Execute(ctx context.Context, command string, args []string, consumer OutputConsumer, opts ExecOptions) (Subprocess, error)
}

// Subprocess pairs a live process handle with its eventual result. The
// result settles exactly once, after all buffered output has been
// flushed to the attached consumer.
type Subprocess interface {
	// Wait blocks until the process closes and returns its result.
	// It is idempotent: later calls return the same settled result.
	Wait(ctx context.Context) (domain.ExecutionResult, error)
	// Kill signals the live process to stop. The result still settles,
	// with whatever partial output was captured.
	Kill() error
	// PID returns the operating-system process id.
	PID() int
}
