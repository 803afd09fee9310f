// Package instance keeps a program to a single running copy per user.
//
// The guard is acquired explicitly at startup and released explicitly at
// exit; a second copy sees Acquire report false and should exit quietly.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yllada/exforms/common"
)

// Guard is a process-wide exclusive lock.
type Guard interface {
	// Acquire tries to take the lock without blocking. It reports false
	// when another process holds it.
	Acquire() (bool, error)
	// Release gives the lock up. Releasing a guard that is not held
	// returns common.ErrGuardNotHeld.
	Release() error
}

// Name returns the identity used for the guard: the executable's base name
// without extension.
func Name() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// New returns the guard for name: the session bus, falling back to a lock
// file when no bus is reachable.
func New(name string) Guard {
	return &fallbackGuard{primary: NewBusGuard(name), fallback: NewFileGuard(name)}
}

// Acquire takes the guard for name. The returned guard must be released
// when ok is true.
func Acquire(name string) (g Guard, ok bool, err error) {
	g = New(name)
	ok, err = g.Acquire()
	if err != nil {
		return nil, false, err
	}
	return g, ok, nil
}

// Exclusive runs fn while holding g. When another process holds the guard,
// fn is skipped and Exclusive returns nil.
func Exclusive(g Guard, fn func() error) error {
	ok, err := g.Acquire()
	if err != nil {
		return fmt.Errorf("failed to check for a running instance: %w", err)
	}
	if !ok {
		common.LogInfo("Another instance is already running")
		return nil
	}
	defer func() {
		if err := g.Release(); err != nil {
			common.LogWarn("Failed to release instance guard: %v", err)
		}
	}()
	return fn()
}

type fallbackGuard struct {
	primary  Guard
	fallback Guard
	held     Guard
}

func (g *fallbackGuard) Acquire() (bool, error) {
	ok, err := g.primary.Acquire()
	if err == nil {
		if ok {
			g.held = g.primary
		}
		return ok, nil
	}
	if !errors.Is(err, common.ErrGuardUnavailable) {
		return false, err
	}
	common.LogDebug("session bus unavailable, using lock file: %v", err)

	ok, err = g.fallback.Acquire()
	if err != nil {
		return false, err
	}
	if ok {
		g.held = g.fallback
	}
	return ok, nil
}

func (g *fallbackGuard) Release() error {
	if g.held == nil {
		return common.ErrGuardNotHeld
	}
	err := g.held.Release()
	g.held = nil
	return err
}
