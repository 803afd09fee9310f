// Package common provides shared constants, types, utilities, and interfaces
// used throughout exforms.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application-wide names, file names and enum values
//   - Errors: sentinel errors for persistence, configuration and the instance guard
//   - Interfaces: the logging abstraction handed to collaborators
//   - Logger: structured logging with file rotation
//   - Utils: file helpers and the text helpers carried over from the widget library
//
// # Usage
//
//	common.LogDebug("registered %s", key)
//
//	if errors.Is(err, common.ErrPositionNotFound) {
//	    // keep default placement
//	}
package common
