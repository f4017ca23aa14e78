package ports

// OutputConsumer observes one subprocess invocation's output incrementally,
// one complete line at a time (newline-terminated, trailing carriage return
// stripped). Lines arrive in emission order per stream; no ordering is
// guaranteed between the two streams. No method is called after the
// invocation's result has settled.
//
//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks
type OutputConsumer interface {
	// Output receives one complete stdout line.
	Output(line string)
	// Error receives one complete stderr line.
	Error(line string)
}
