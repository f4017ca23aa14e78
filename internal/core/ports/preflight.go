package ports

import "context"

// Preflight validates that a configure or build invocation can proceed.
// A non-nil error aborts the operation without touching the build tree.
//
//go:generate mockgen -source=preflight.go -destination=mocks/mock_preflight.go -package=mocks
type Preflight interface {
	Check(ctx context.Context) error
}
