// Package main provides the entry point for the exforms demo application.
// exforms decorates stock widgets with focus-color swapping, caption
// synchronization, window-position persistence and key shortcuts, and
// hosts a sample form on GTK4 or in the terminal.
//
// Usage:
//
//	exforms [--tui] [--verbose] [--multiple]
//	exforms positions list
//	exforms positions reset NAME
//	exforms version
package main

import (
	"fmt"
	"os"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
