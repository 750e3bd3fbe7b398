package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunServe_StoreFailureReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	dbPath := filepath.Join(dir, "missing", "board.db")
	content := "store:\n  driver: sqlite\n  path: " + dbPath + "\nai:\n  enabled: false\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	prev := cfgPath
	cfgPath = cfgFile
	t.Cleanup(func() { cfgPath = prev })

	err := runServe(serveCmd, nil)
	if err == nil {
		t.Fatal("runServe() = nil, want store error")
	}
	if !strings.Contains(err.Error(), "open store") {
		t.Errorf("runServe() = %v, want open store error", err)
	}
}
