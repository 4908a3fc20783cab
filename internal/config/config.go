// Package config resolves the console configuration: a waybill.yaml
// file discovered upwards from the working directory, with environment
// overrides (WAYBILL_*) applied on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked for during discovery.
const FileName = "waybill.yaml"

// Config is the console configuration.
type Config struct {
	APIBaseURL     string `yaml:"api_base_url" envconfig:"API_BASE_URL"`
	SessionFile    string `yaml:"session_file" envconfig:"SESSION_FILE"`
	MetricsEnabled bool   `yaml:"metrics_enabled" envconfig:"METRICS_ENABLED"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		APIBaseURL:  "http://localhost:8080",
		SessionFile: filepath.Join(home, ".waybill", "session.yaml"),
	}
}

// Load resolves the configuration starting from startDir: defaults,
// then the nearest waybill.yaml walking upwards, then WAYBILL_*
// environment variables. It returns the effective config and the path
// of the file used ("" when running on defaults).
func Load(startDir string) (Config, string, error) {
	cfg := Default()

	path, found, err := discover(startDir)
	if err != nil {
		return cfg, "", err
	}
	if found {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	// Environment beats file.
	if err := envconfig.Process("waybill", &cfg); err != nil {
		return cfg, "", fmt.Errorf("failed to process environment: %w", err)
	}

	if !found {
		path = ""
	}
	return cfg, path, nil
}

// discover looks upwards from startDir for the config file.
func discover(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root.
			return "", false, nil
		}
		dir = parent
	}
}
