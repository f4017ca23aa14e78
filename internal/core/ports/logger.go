package ports

// Logger defines the interface for logging. It doubles as the sink for
// recoverable diagnostics such as skipped cache-file lines.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
