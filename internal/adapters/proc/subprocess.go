package proc

import (
	"context"
	"os/exec"

	"github.com/tanji-dg/cmt/internal/core/domain"
)

// Subprocess implements ports.Subprocess for a process started by Runner.
// The result settles exactly once, after both streams have been drained
// and flushed.
type Subprocess struct {
	cmd    *exec.Cmd
	done   chan struct{}
	result domain.ExecutionResult
}

// Wait blocks until the process closes or ctx is cancelled. It is
// idempotent once the result has settled.
func (s *Subprocess) Wait(ctx context.Context) (domain.ExecutionResult, error) {
	select {
	case <-s.done:
		return s.result, nil
	case <-ctx.Done():
		return domain.ExecutionResult{}, ctx.Err()
	}
}

// Kill signals the live process to stop. The result still settles with
// whatever partial output was captured and a signal-derived exit code.
func (s *Subprocess) Kill() error {
	return s.cmd.Process.Kill()
}

// PID returns the operating-system process id.
func (s *Subprocess) PID() int {
	return s.cmd.Process.Pid
}

func (s *Subprocess) settle(exitCode int, stdout, stderr string) {
	s.result = domain.ExecutionResult{ExitCode: exitCode, Stdout: stdout, Stderr: stderr}
	close(s.done)
}
