// Package proc provides the subprocess runner adapter.
package proc

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tanji-dg/cmt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec. Stdout and stderr are
// read on separate goroutines and demultiplexed into per-stream line
// events; consumer invocations are serialized so implementations need no
// locking of their own.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Execute spawns command with args. It returns an error only when the
// process fails to start; everything after a successful spawn is
// reported through the returned Subprocess.
func (r *Runner) Execute(ctx context.Context, command string, args []string, consumer ports.OutputConsumer, opts ports.ExecOptions) (ports.Subprocess, error) {
	argv := make([]string, 0, len(opts.Wrapper)+1+len(args))
	if runtime.GOOS != "windows" {
		argv = append(argv, opts.Wrapper...)
	}
	argv = append(argv, command)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // tool path comes from project config
	cmd.Dir = opts.Dir
	cmd.Env = mergedEnv(os.Environ(), opts.Env)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to spawn process"), "command", command)
	}

	// One mutex serializes consumer calls from both pump goroutines.
	// Per-stream ordering is preserved because each stream is pumped by
	// exactly one goroutine.
	var mu sync.Mutex
	outSplit := newLineSplitter(func(line string) {
		if consumer == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		consumer.Output(line)
	})
	errSplit := newLineSplitter(func(line string) {
		if consumer == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		consumer.Error(line)
	})

	sub := &Subprocess{cmd: cmd, done: make(chan struct{})}

	var g errgroup.Group
	g.Go(func() error { return pump(stdout, outSplit) })
	g.Go(func() error { return pump(stderr, errSplit) })

	go func() {
		pumpErr := g.Wait()
		// Remaining partial lines are flushed before the result settles,
		// so the consumer never hears from us after Wait returns.
		outSplit.Flush()
		errSplit.Flush()

		waitErr := cmd.Wait()
		if pumpErr != nil && r.logger != nil {
			r.logger.Error(zerr.Wrap(pumpErr, "stream read failed"))
		}
		sub.settle(exitCode(waitErr), outSplit.Text(), errSplit.Text())
	}()

	return sub, nil
}

// pump copies raw chunks from the stream into the splitter until EOF.
func pump(stream io.Reader, split *lineSplitter) error {
	buf := make([]byte, 4096)
	for {
		n, err := stream.Read(buf)
		if n > 0 {
			split.Feed(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// exitCode maps cmd.Wait's error to a numeric exit code. A process
// killed by a signal reports the signal-derived code; anything the
// platform cannot express becomes -1.
func exitCode(waitErr error) int {
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// mergedEnv overlays extra variables on the host environment.
func mergedEnv(sysEnv []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return sysEnv
	}
	env := make([]string, len(sysEnv), len(sysEnv)+len(extra))
	copy(env, sysEnv)
	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}
