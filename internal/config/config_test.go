package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected no config file, got %s", path)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("default base URL = %q", cfg.APIBaseURL)
	}
}

func TestLoad_FindsFileUpwards(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	content := "api_base_url: https://vendor.example.com\nsession_file: /tmp/s.yaml\n"
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Load(nested)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("path = %s", path)
	}
	if cfg.APIBaseURL != "https://vendor.example.com" {
		t.Errorf("base URL = %q", cfg.APIBaseURL)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	content := "api_base_url: https://from-file.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("WAYBILL_API_BASE_URL", "https://from-env.example.com")

	cfg, _, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBaseURL != "https://from-env.example.com" {
		t.Errorf("base URL = %q, env override lost", cfg.APIBaseURL)
	}
}
