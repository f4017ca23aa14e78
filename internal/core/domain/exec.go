// Package domain contains the core domain models for driving an external
// CMake-style build tool.
package domain

// ExecutionResult is the final outcome of one subprocess invocation.
// It is produced exactly once per invocation and never mutated afterwards.
type ExecutionResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
