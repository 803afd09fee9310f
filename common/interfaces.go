// Package common provides shared constants, types, and utilities
// used across exforms.
package common

// Logger defines the interface for structured logging.
// *AppLogger satisfies it; collaborators accept it so tests can capture output.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}

// Closer is implemented by stores that hold an open resource.
type Closer interface {
	Close() error
}
