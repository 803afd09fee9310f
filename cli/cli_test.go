package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yllada/exforms/position"
)

func newTestCLI(t *testing.T) (*CLI, position.Store, *bytes.Buffer) {
	t.Helper()
	store := position.NewFileStore(t.TempDir())
	var out bytes.Buffer
	c := New(store)
	c.SetOutput(&out)
	return c, store, &out
}

func TestListPositionsEmpty(t *testing.T) {
	c, _, out := newTestCLI(t)
	if err := c.ListPositions(); err != nil {
		t.Fatalf("ListPositions() error = %v", err)
	}
	if !strings.Contains(out.String(), "No saved window positions") {
		t.Errorf("output = %q", out.String())
	}
}

func TestListPositionsSorted(t *testing.T) {
	c, store, out := newTestCLI(t)
	store.Save("Zeta", position.Record{Left: 1, Top: 2})
	store.Save("Alpha", position.Record{Left: 120, Top: 340})

	if err := c.ListPositions(); err != nil {
		t.Fatalf("ListPositions() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), out.String())
	}
	if got := strings.Fields(lines[2]); strings.Join(got, " ") != "Alpha 120 340" {
		t.Errorf("first row = %q", lines[2])
	}
	if got := strings.Fields(lines[3]); strings.Join(got, " ") != "Zeta 1 2" {
		t.Errorf("second row = %q", lines[3])
	}
}

func TestResetPosition(t *testing.T) {
	c, store, _ := newTestCLI(t)
	store.Save("Main", position.Record{Left: 1, Top: 2})

	if err := c.ResetPosition("Main"); err != nil {
		t.Fatalf("ResetPosition() error = %v", err)
	}
	if _, err := store.Load("Main"); err == nil {
		t.Error("record still present after reset")
	}
}

func TestResetAll(t *testing.T) {
	c, store, out := newTestCLI(t)
	store.Save("A", position.Record{})
	store.Save("B", position.Record{})

	if err := c.ResetAll(); err != nil {
		t.Fatalf("ResetAll() error = %v", err)
	}
	records, _ := store.List()
	if len(records) != 0 {
		t.Errorf("records left: %v", records)
	}
	if !strings.Contains(out.String(), "2 position(s) reset") {
		t.Errorf("output = %q", out.String())
	}
}
