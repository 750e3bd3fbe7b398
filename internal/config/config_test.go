package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  cors_origins:
    - http://localhost:5173
store:
  driver: sqlite
  path: board.db
  seed: false
auth:
  session_ttl: 2h
ai:
  enabled: true
  provider: openai
  api_key: "sk-test"
  timeout: 10s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Store.Driver != DriverSQLite || cfg.Store.Path != "board.db" || cfg.Store.Seed {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Auth.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %v, want 2h", cfg.Auth.SessionTTL)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("AI.Model = %q, want openai default", cfg.AI.Model)
	}
	if cfg.AI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("AI.BaseURL = %q, want openai default", cfg.AI.BaseURL)
	}
	if cfg.AI.Timeout != 10*time.Second {
		t.Errorf("AI.Timeout = %v, want 10s", cfg.AI.Timeout)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Store.Driver != DriverMemory || !cfg.Store.Seed {
		t.Errorf("Store = %+v, want seeded memory store", cfg.Store)
	}
	if cfg.AI.Enabled {
		t.Error("AI should be disabled by default")
	}
	if cfg.AI.Provider != ProviderGemini || cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("AI = %+v, want gemini-2.5-flash", cfg.AI)
	}
	if cfg.Notification.Type != "log" {
		t.Errorf("Notification.Type = %q, want log", cfg.Notification.Type)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "from-env")
	path := writeConfig(t, `
ai:
  enabled: true
  api_key: "${TEST_GEMINI_KEY}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.APIKey != "from-env" {
		t.Errorf("AI.APIKey = %q, want from-env", cfg.AI.APIKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown driver", "store:\n  driver: postgres\n"},
		{"bad session ttl", "auth:\n  session_ttl: soon\n"},
		{"zero session ttl", "auth:\n  session_ttl: 0s\n"},
		{"ai enabled without key", "ai:\n  enabled: true\n"},
		{"unknown provider", "ai:\n  provider: llama\n"},
		{"slack without webhook", "notification:\n  type: slack\n"},
		{"slack bad webhook", "notification:\n  type: slack\n  webhook_url: https://example.com/hook\n"},
		{"unknown notifier", "notification:\n  type: email\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Load: expected validation error for %s", tt.name)
			}
		})
	}
}
