package config

import (
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Currency != "₹" {
		t.Fatalf("Currency = %q, want default ₹", cfg.Display.Currency)
	}
	if cfg.General.DataDir != "" {
		t.Fatalf("DataDir = %q, want empty default", cfg.General.DataDir)
	}
	if Exists() {
		t.Fatal("Exists = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := DefaultConfig()
	want.Display.Currency = "$"
	want.General.DataDir = "/tmp/fintrack-data"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	if got, want := DataDir(), filepath.Join(dir, "fintrack"); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}
