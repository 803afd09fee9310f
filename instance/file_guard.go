package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/yllada/exforms/common"
)

// FileGuard holds an advisory lock on a file in the temp directory. The
// kernel drops the lock when the process dies.
type FileGuard struct {
	path string
	file *os.File
}

// NewFileGuard returns a guard locking <tmp>/<name>.lock.
func NewFileGuard(name string) *FileGuard {
	return &FileGuard{path: filepath.Join(os.TempDir(), name+".lock")}
}

// Path returns the lock file path.
func (g *FileGuard) Path() string { return g.path }

// Acquire implements Guard.
func (g *FileGuard) Acquire() (bool, error) {
	if g.file != nil {
		return true, nil
	}

	f, err := os.OpenFile(g.path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			common.LogInfo("another instance holds %s", g.path)
			return false, nil
		}
		return false, fmt.Errorf("failed to lock %s: %w", g.path, err)
	}

	g.file = f
	common.LogDebug("acquired instance lock %s", g.path)
	return true, nil
}

// Release implements Guard.
func (g *FileGuard) Release() error {
	if g.file == nil {
		return common.ErrGuardNotHeld
	}
	f := g.file
	g.file = nil

	if err := unix.Flock(int(f.Fd()), unix.LOCK_UN); err != nil {
		f.Close()
		return fmt.Errorf("failed to unlock %s: %w", g.path, err)
	}
	return f.Close()
}
