// Package driver implements the configure/build state machine that
// sequences invocations of the external build-configuration tool.
package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tanji-dg/cmt/internal/adapters/cache"
	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports"
	"go.trai.ch/zerr"
)

// CacheFilename is the name of the external tool's persisted cache file
// inside the binary directory.
const CacheFilename = "CMakeCache.txt"

// generatedDirname is the tool's generated-files directory, removed by
// CleanConfigure alongside the cache file.
const generatedDirname = "CMakeFiles"

// defaultBuildType is the build type used until a variant sets one.
const defaultBuildType = "Debug"

// CMakeDriver drives a CMake-style tool against one build tree. All
// mutable state is private to the instance; a mutex makes each public
// operation an uninterrupted sequence of steps, so two operations on
// one driver never interleave.
type CMakeDriver struct {
	cfg       domain.ProjectConfig
	runner    ports.Runner
	preflight ports.Preflight
	logger    ports.Logger

	mu               sync.Mutex
	kit              *domain.Kit
	buildType        string
	settings         []domain.Setting
	linkage          domain.Linkage
	needsReconfigure bool
	targets          []domain.Target
	cache            *cache.Store
}

// New creates a CMakeDriver and runs its initialization step: the cache
// is loaded, and if a build tree already exists its targets are
// discovered so Targets is populated before the first Configure.
func New(ctx context.Context, cfg domain.ProjectConfig, runner ports.Runner, preflight ports.Preflight, logger ports.Logger) (*CMakeDriver, error) {
	store, err := cache.FromPath(filepath.Join(cfg.BinaryDir, CacheFilename), logger)
	if err != nil {
		return nil, err
	}

	d := &CMakeDriver{
		cfg:              cfg,
		runner:           runner,
		preflight:        preflight,
		logger:           logger,
		buildType:        defaultBuildType,
		needsReconfigure: true,
		cache:            store,
	}
	if store.Exists() {
		if err := d.refreshTargets(ctx); err != nil {
			logger.Error(zerr.Wrap(err, "initial target discovery failed"))
		}
	}
	return d, nil
}

// SetKit adopts a toolchain. When the new kit's toolchain identity
// differs from the current one the binary directory is wiped first, so
// object files built by another compiler never mix with new ones. A
// wipe failure leaves the previous kit in place.
func (d *CMakeDriver) SetKit(_ context.Context, kit domain.Kit) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.kit != nil && d.kit.Fingerprint() != kit.Fingerprint() {
		if err := os.RemoveAll(d.cfg.BinaryDir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to wipe binary directory"), "dir", d.cfg.BinaryDir)
		}
		// The cache file went with the tree; drop the stale snapshot so
		// the next configure selects a generator again.
		store, err := d.cache.Reload(d.logger)
		if err != nil {
			return err
		}
		d.cache = store
	}
	d.kit = &kit
	d.needsReconfigure = true
	return nil
}

// SetVariantOptions merges variant options into driver state. Unset
// fields keep their previous values. No I/O.
func (d *CMakeDriver) SetVariantOptions(opts domain.VariantOptions) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if opts.BuildType != "" {
		d.buildType = opts.BuildType
	}
	if opts.Settings != nil {
		d.settings = opts.Settings
	}
	if opts.Linkage != "" {
		d.linkage = opts.Linkage
	}
}

// Configure runs the external tool against the source tree and returns
// its exit code. A failed preflight check aborts with -1. The cache and
// target list are refreshed afterwards regardless of the exit code.
func (d *CMakeDriver) Configure(ctx context.Context, consumer ports.OutputConsumer) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.configure(ctx, consumer)
}

func (d *CMakeDriver) configure(ctx context.Context, consumer ports.OutputConsumer) (int, error) {
	if err := d.preflight.Check(ctx); err != nil {
		d.logger.Error(zerr.Wrap(err, "configure aborted by preflight check"))
		return -1, nil
	}

	if err := os.MkdirAll(d.cfg.BinaryDir, 0o755); err != nil {
		return -1, zerr.Wrap(err, "failed to create binary directory")
	}

	sub, err := d.runner.Execute(ctx, d.cfg.CMakePath, d.configureArgs(), consumer, d.execOptions())
	if err != nil {
		return -1, err
	}
	res, err := sub.Wait(ctx)
	if err != nil {
		return -1, err
	}

	if res.ExitCode == 0 {
		d.needsReconfigure = false
	}
	d.refresh(ctx)
	return res.ExitCode, nil
}

// CleanConfigure deletes the cache file and the tool's generated-files
// directory, then configures from scratch.
func (d *CMakeDriver) CleanConfigure(ctx context.Context, consumer ports.OutputConsumer) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cachePath := filepath.Join(d.cfg.BinaryDir, CacheFilename)
	if err := os.Remove(cachePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return -1, zerr.With(zerr.Wrap(err, "failed to remove cache file"), "path", cachePath)
	}
	generated := filepath.Join(d.cfg.BinaryDir, generatedDirname)
	if err := os.RemoveAll(generated); err != nil {
		return -1, zerr.With(zerr.Wrap(err, "failed to remove generated files"), "path", generated)
	}

	// The cache file is gone; drop the stale snapshot so configure
	// selects a generator again.
	store, err := cache.FromPath(cachePath, d.logger)
	if err != nil {
		return -1, err
	}
	d.cache = store

	return d.configure(ctx, consumer)
}

// Build invokes the underlying build tool for one target. It returns
// the settled subprocess handle, or nil when the preflight check fails.
// Cache and targets are refreshed after the process closes.
func (d *CMakeDriver) Build(ctx context.Context, target string, consumer ports.OutputConsumer) (ports.Subprocess, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.preflight.Check(ctx); err != nil {
		d.logger.Error(zerr.Wrap(err, "build aborted by preflight check"))
		return nil, nil
	}

	sub, err := d.runner.Execute(ctx, d.cfg.CMakePath, d.buildArgs(target), consumer, d.execOptions())
	if err != nil {
		return nil, err
	}
	if _, err := sub.Wait(ctx); err != nil {
		return nil, err
	}

	d.refresh(ctx)
	return sub, nil
}

// Targets returns the last-discovered target list.
func (d *CMakeDriver) Targets() []domain.Target {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.Target, len(d.targets))
	copy(out, d.targets)
	return out
}

// NeedsReconfigure reports whether a configure pass is required before
// the next build.
func (d *CMakeDriver) NeedsReconfigure() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.needsReconfigure
}

// refresh reloads the cache snapshot and re-discovers targets. It is
// best-effort: failures are logged, never propagated, so stale state
// does not linger silently after a failed configure or build.
func (d *CMakeDriver) refresh(ctx context.Context) {
	store, err := d.cache.Reload(d.logger)
	if err != nil {
		d.logger.Error(zerr.Wrap(err, "cache reload failed"))
	} else {
		d.cache = store
	}

	if err := d.refreshTargets(ctx); err != nil {
		d.logger.Error(zerr.Wrap(err, "target discovery failed"))
	}
}

// refreshTargets asks the build tool to list its targets and replaces
// the driver's target list with the parsed result. An unknown generator
// still runs the listing; it may simply yield nothing.
func (d *CMakeDriver) refreshTargets(ctx context.Context) error {
	parser := NewTargetListParser(d.cache.Generator())

	args := []string{"--build", d.cfg.BinaryDir, "--target", "help"}
	sub, err := d.runner.Execute(ctx, d.cfg.CMakePath, args, parser, d.execOptions())
	if err != nil {
		return err
	}
	if _, err := sub.Wait(ctx); err != nil {
		return err
	}

	names := parser.TargetNames()
	targets := make([]domain.Target, 0, len(names))
	for _, name := range names {
		targets = append(targets, domain.NamedTarget(name))
	}
	d.targets = targets
	return nil
}

func (d *CMakeDriver) execOptions() ports.ExecOptions {
	return ports.ExecOptions{
		Dir:     d.cfg.SourceDir,
		Env:     d.cfg.Env,
		Wrapper: d.cfg.Wrapper,
	}
}

var _ ports.Driver = (*CMakeDriver)(nil)
