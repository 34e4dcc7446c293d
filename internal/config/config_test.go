package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing file should not be an error, got %v", err)
	}
	if cfg.Title != "Marked text" {
		t.Errorf("Missing file should yield defaults, got %+v", cfg)
	}
	if cfg.Bullet != "-" {
		t.Errorf("Default bullet = %q, want -", cfg.Bullet)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `title = "Emphasis"
bullet = "*"

[modes]
".txt" = "markdown"
".note" = "org"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Title != "Emphasis" {
		t.Errorf("Title = %q, want Emphasis", cfg.Title)
	}
	if cfg.Bullet != "*" {
		t.Errorf("Bullet = %q, want *", cfg.Bullet)
	}
	if cfg.Modes[".txt"] != "markdown" || cfg.Modes[".note"] != "org" {
		t.Errorf("Modes = %v", cfg.Modes)
	}
}

func TestLoadFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("title = \"Custom\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Title != "Custom" {
		t.Errorf("Title = %q, want Custom", cfg.Title)
	}
	// Unset fields keep their defaults
	if cfg.Bullet != "-" {
		t.Errorf("Bullet = %q, want default -", cfg.Bullet)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("title = [oops\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Malformed config should be an error")
	}
}

func TestModeFor(t *testing.T) {
	cfg := Default()
	cfg.Modes = map[string]string{".txt": "markdown"}

	fallback := func(name string) string {
		if filepath.Ext(name) == ".org" {
			return "org"
		}
		return ""
	}

	tests := []struct {
		filename string
		want     string
	}{
		{"notes.txt", "markdown"},
		{"NOTES.TXT", "markdown"},
		{"doc.org", "org"},
		{"other.bin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := cfg.ModeFor(tt.filename, fallback); got != tt.want {
				t.Errorf("ModeFor(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
