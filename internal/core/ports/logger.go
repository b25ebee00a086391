package ports

import "io"

//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks

// Logger defines the interface for logging.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}
