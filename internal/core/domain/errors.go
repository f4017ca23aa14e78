package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedCacheLine is reported when a cache-file line does not
	// match the name:type=value grammar. The line is skipped; parsing
	// continues.
	ErrMalformedCacheLine = zerr.New("malformed cache line")

	// ErrUnknownCacheType is reported when a cache-file line carries a
	// type token outside the fixed set. The line is skipped.
	ErrUnknownCacheType = zerr.New("unknown cache entry type")

	// ErrConfigureFailed is returned by the application layer when the
	// external tool exits non-zero during configure.
	ErrConfigureFailed = zerr.New("configure failed")

	// ErrBuildFailed is returned by the application layer when the
	// external tool exits non-zero during build.
	ErrBuildFailed = zerr.New("build failed")

	// ErrKitNotFound is returned when a requested kit is not declared in
	// the project configuration.
	ErrKitNotFound = zerr.New("kit not found")

	// ErrVariantNotFound is returned when a requested variant is not
	// declared in the variants file.
	ErrVariantNotFound = zerr.New("variant not found")
)
