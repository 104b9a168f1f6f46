package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNewManagerDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cm, err := NewManager("")
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	cfg := cm.Get()
	if cfg.Renderer != "text" {
		t.Errorf("renderer = %q, want text", cfg.Renderer)
	}
	if cfg.TimestampLayout != time.RFC3339 {
		t.Errorf("timestamp layout = %q", cfg.TimestampLayout)
	}
	if cfg.Verbose {
		t.Error("verbose should default to false")
	}
}

func TestNewManagerReadsFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "renderer: html\nrespondent: ada@example.com\nverbose: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	cfg := cm.Get()
	if cfg.Renderer != "html" || cfg.Respondent != "ada@example.com" || !cfg.Verbose {
		t.Errorf("unexpected config: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.TimestampLayout != time.RFC3339 {
		t.Errorf("timestamp layout = %q", cfg.TimestampLayout)
	}
}

func TestNewManagerEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("FORMFILL_RENDERER", "page")

	cm, err := NewManager("")
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if got := cm.Get().Renderer; got != "page" {
		t.Errorf("renderer = %q, want page", got)
	}
}

func TestNewManagerRejectsMalformedFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("renderer: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := NewManager(path); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("write default: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "# formfill configuration") {
		t.Errorf("missing header:\n%s", text)
	}
	if !strings.Contains(text, "renderer: text") {
		t.Errorf("missing default renderer:\n%s", text)
	}
}
