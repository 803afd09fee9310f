// Package cli provides command-line access to exforms state.
// It lets users inspect and reset saved window positions without
// launching a window.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/yllada/exforms/position"
)

// CLI represents the command-line interface.
type CLI struct {
	store position.Store
	out   io.Writer
}

// New creates a new CLI instance over store, writing to stdout.
func New(store position.Store) *CLI {
	return &CLI{store: store, out: os.Stdout}
}

// SetOutput redirects the CLI's output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// ListPositions prints every saved window position.
func (c *CLI) ListPositions() error {
	records, err := c.store.List()
	if err != nil {
		return fmt.Errorf("failed to list positions: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(c.out, "No saved window positions.")
		return nil
	}

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WINDOW\tLEFT\tTOP")
	fmt.Fprintln(w, "------\t----\t---")
	for _, name := range names {
		rec := records[name]
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, rec.Left, rec.Top)
	}

	return w.Flush()
}

// ResetPosition forgets the saved position of the named window.
func (c *CLI) ResetPosition(name string) error {
	if err := c.store.Delete(name); err != nil {
		return fmt.Errorf("failed to reset %q: %w", name, err)
	}
	fmt.Fprintf(c.out, "Position of %s reset.\n", name)
	return nil
}

// ResetAll forgets every saved position.
func (c *CLI) ResetAll() error {
	records, err := c.store.List()
	if err != nil {
		return fmt.Errorf("failed to list positions: %w", err)
	}
	for name := range records {
		if err := c.store.Delete(name); err != nil {
			return fmt.Errorf("failed to reset %q: %w", name, err)
		}
	}
	fmt.Fprintf(c.out, "%d position(s) reset.\n", len(records))
	return nil
}
