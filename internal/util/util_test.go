package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	config := ParseConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if config.Interface != "msr" {
		t.Fatalf("Interface = %q, want \"msr\"", config.Interface)
	}
	if config.AllocationMode != "core" {
		t.Fatalf("AllocationMode = %q, want \"core\"", config.AllocationMode)
	}
	if config.MaxListEntries != 128 {
		t.Fatalf("MaxListEntries = %d, want 128", config.MaxListEntries)
	}
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resctl.yaml")
	content := "Interface: os\nMaxListEntries: 32\nLogFile: /tmp/resctl.log\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config := ParseConfig(path)
	if config.Interface != "os" {
		t.Fatalf("Interface = %q, want \"os\"", config.Interface)
	}
	if config.MaxListEntries != 32 {
		t.Fatalf("MaxListEntries = %d, want 32", config.MaxListEntries)
	}
	if config.LogFile != "/tmp/resctl.log" {
		t.Fatalf("LogFile = %q", config.LogFile)
	}
	// unset keys keep their defaults
	if config.AllocationMode != "core" {
		t.Fatalf("AllocationMode = %q, want \"core\"", config.AllocationMode)
	}
}
