package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ChunkSize != 50 {
		t.Errorf("expected default chunk_size 50, got %d", cfg.ChunkSize)
	}
	if cfg.WaitSeconds != 10 {
		t.Errorf("expected default wait_seconds 10, got %d", cfg.WaitSeconds)
	}
	if cfg.Mode != ModeChat {
		t.Errorf("expected default mode %q, got %q", ModeChat, cfg.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Run("rejects non-positive chunk size", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ChunkSize = 0
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for zero chunk_size")
		}
	})

	t.Run("rejects negative wait", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.WaitSeconds = -1
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for negative wait_seconds")
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Mode = "parallel"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unknown mode")
		}
	})

	t.Run("accepts batch mode and zero wait", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Mode = ModeBatch
		cfg.WaitSeconds = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("SCRIBE_TEST_KEY", "secret-value")

	t.Run("expands references", func(t *testing.T) {
		got := ResolveEnvVars("${SCRIBE_TEST_KEY}")
		if got != "secret-value" {
			t.Errorf("expected secret-value, got %s", got)
		}
	})

	t.Run("passes plain strings through", func(t *testing.T) {
		if got := ResolveEnvVars("literal"); got != "literal" {
			t.Errorf("expected literal, got %s", got)
		}
	})

	t.Run("unset variable resolves empty", func(t *testing.T) {
		if got := ResolveEnvVars("${SCRIBE_TEST_UNSET_KEY}"); got != "" {
			t.Errorf("expected empty string, got %s", got)
		}
	})
}

func TestResolvedAPIKey(t *testing.T) {
	t.Setenv("SCRIBE_TEST_API_KEY", "sk-test")
	cfg := DefaultConfig()
	cfg.APIKey = "${SCRIBE_TEST_API_KEY}"
	if cfg.ResolvedAPIKey() != "sk-test" {
		t.Errorf("expected sk-test, got %s", cfg.ResolvedAPIKey())
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "chunk_size: 50") {
		t.Error("written config should contain default chunk_size")
	}
	if !strings.Contains(content, "${OPENAI_API_KEY}") {
		t.Error("written config should reference the API key env var")
	}
}
