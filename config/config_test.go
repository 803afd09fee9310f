package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/exforms/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
	if !common.FileExists(path) {
		t.Error("LoadFrom() did not write the default file")
	}
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "all fields",
			content: "theme: dark\nhost: tui\nsingle_instance: false\nposition_backend: sqlite\nposition_dir: /tmp/pos\n",
			want:    Config{Theme: "dark", Host: "tui", PositionBackend: "sqlite", PositionDir: "/tmp/pos"},
		},
		{
			name:    "missing fields keep defaults",
			content: "theme: light\n",
			want:    Config{Theme: "light", Host: "gtk", SingleInstance: true, PositionBackend: "file"},
		},
		{
			name:    "invalid enums fall back",
			content: "theme: purple\nhost: qt\nposition_backend: redis\n",
			want:    Config{Theme: "auto", Host: "gtk", SingleInstance: true, PositionBackend: "file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("LoadFrom() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestLoadFromRejectsUnknownFields(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "theme: dark\nminimize_to_tray: true\n"))
	if !errors.Is(err, common.ErrInvalidConfig) {
		t.Errorf("LoadFrom() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Theme: "light", Host: "tui", PositionBackend: "sqlite"}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", *got, *cfg)
	}
}
