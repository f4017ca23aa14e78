package ports

import (
	"context"

	"github.com/tanji-dg/cmt/internal/core/domain"
)

// Driver sequences configure and build operations against one build tree.
// Implementations are keyed by generator family; all share this contract.
//
// Public operations on one Driver are mutually exclusive: each runs as a
// single uninterrupted chain of steps, and concurrent callers are
// serialized internally.
//
//go:generate mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks
type Driver interface {
	// SetKit adopts a toolchain. A kit whose toolchain identity differs
	// from the current one wipes the binary directory first; a wipe
	// failure leaves the previous kit in place.
	SetKit(ctx context.Context, kit domain.Kit) error

	// SetVariantOptions merges build-variant options into driver state.
	// Unset fields keep their previous values. No I/O.
	SetVariantOptions(opts domain.VariantOptions)

	// Configure runs the external tool against the source tree and
	// returns its exit code. A failed preflight check yields -1. The
	// cache and target list are refreshed regardless of outcome.
	Configure(ctx context.Context, consumer OutputConsumer) (int, error)

	// CleanConfigure deletes the cache file and the tool's generated
	// files, then configures.
	CleanConfigure(ctx context.Context, consumer OutputConsumer) (int, error)

	// Build invokes the underlying build tool for one target and
	// returns the settled subprocess handle, or nil if the preflight
	// check failed.
	Build(ctx context.Context, target string, consumer OutputConsumer) (Subprocess, error)

	// Targets returns the last-discovered target list.
	Targets() []domain.Target

	// NeedsReconfigure reports whether driver state changed in a way
	// that requires a configure pass before the next build.
	NeedsReconfigure() bool
}
