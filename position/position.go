// Package position persists top-level window positions by window name.
//
// A record is read once when a window loads and written once when it
// closes. Records are scoped per window name, not per window instance:
// two windows with the same name share a record and the last one closed wins.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yllada/exforms/common"
)

// Record is a persisted window position.
type Record struct {
	Left int
	Top  int
}

// Store loads and saves window positions.
type Store interface {
	// Load returns the record for name. It fails with common.ErrPositionNotFound
	// when no record exists and common.ErrMalformedPosition when a coordinate
	// is not an integer.
	Load(name string) (Record, error)
	// Save creates or replaces the record for name.
	Save(name string, rec Record) error
	// Delete removes the record for name. Deleting a missing record is not an error.
	Delete(name string) error
	// List returns every stored record keyed by window name.
	List() (map[string]Record, error)
}

// Placeable is a top-level window whose position can be restored.
type Placeable interface {
	WindowName() string
	Location() (left, top int)
	// PlaceAt switches the window to explicit placement at left, top.
	PlaceAt(left, top int)
}

// Restore applies the stored position for w. When no usable record exists
// the window keeps its default placement; the reason is only logged.
func Restore(store Store, w Placeable) bool {
	name := w.WindowName()
	rec, err := store.Load(name)
	if err != nil {
		if errors.Is(err, common.ErrPositionNotFound) {
			common.LogDebug("no saved position for %q", name)
		} else {
			common.LogDebug("ignoring saved position for %q: %v", name, err)
		}
		return false
	}

	w.PlaceAt(rec.Left, rec.Top)
	common.LogDebug("restored %q to %d,%d", name, rec.Left, rec.Top)
	return true
}

// Persist saves the current position of w.
func Persist(store Store, w Placeable) error {
	left, top := w.Location()
	if err := store.Save(w.WindowName(), Record{Left: left, Top: top}); err != nil {
		return fmt.Errorf("failed to save position of %q: %w", w.WindowName(), err)
	}
	return nil
}

// parseRecord parses the textual coordinates of a stored record.
func parseRecord(name, left, top string) (Record, error) {
	l, errL := strconv.Atoi(strings.TrimSpace(left))
	t, errT := strconv.Atoi(strings.TrimSpace(top))
	if errL != nil || errT != nil {
		return Record{}, common.WrapError(common.ErrMalformedPosition, fmt.Sprintf("window %q (left=%q top=%q)", name, left, top))
	}
	return Record{Left: l, Top: t}, nil
}

// validName rejects names that cannot key a record.
func validName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return common.WrapError(common.ErrInvalidWindowName, fmt.Sprintf("%q", name))
	}
	return nil
}
