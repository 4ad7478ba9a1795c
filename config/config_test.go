package config

import (
	"os"
	"strings"
	"testing"
)

// writeTempConfig creates a minimal configuration file required for LoadConfig
// and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "cfg-*.yml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return f.Name()
}

const minimalConfig = `mystic:
  name: "TestApp"
  version: "1.0"
ephemeris:
  table_path: "data/ephemeris.yml"
`

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, minimalConfig)
	defer os.Remove(path)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Mystic.Name != "TestApp" {
		t.Errorf("unexpected name: %s", cfg.Mystic.Name)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("unexpected default address: %s", cfg.Server.Address)
	}
	if cfg.Server.RateLimit.RequestsPerSecond != 20 {
		t.Errorf("unexpected default rate limit: %d", cfg.Server.RateLimit.RequestsPerSecond)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeTempConfig(t, `mystic:
  name: "TestApp"
  version: "1.0"
server:
  address: ":9090"
  rate_limit:
    requests_per_second: 5
    burst_size: 10
ephemeris:
  table_path: "data/ephemeris.yml"
logging:
  level: "debug"
  format: "text"
`)
	defer os.Remove(path)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Errorf("unexpected address: %s", cfg.Server.Address)
	}
	if cfg.Server.RateLimit.RequestsPerSecond != 5 || cfg.Server.RateLimit.BurstSize != 10 {
		t.Errorf("unexpected rate limit: %+v", cfg.Server.RateLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected log level: %s", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeTempConfig(t, minimalConfig)
	defer os.Remove(path)

	t.Setenv("MYSTIC_EPHEMERIS_TABLE", "/var/lib/mystic/table.yml")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Ephemeris.TablePath != "/var/lib/mystic/table.yml" {
		t.Errorf("env override ignored: %s", cfg.Ephemeris.TablePath)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("env override ignored: %s", cfg.Logging.Level)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing name",
			"mystic:\n  version: \"1.0\"\nephemeris:\n  table_path: \"x.yml\"\n",
			"mystic.name",
		},
		{
			"missing table path",
			"mystic:\n  name: \"x\"\n  version: \"1.0\"\n",
			"ephemeris.table_path",
		},
		{
			"bad log format",
			minimalConfig + "logging:\n  format: \"xml\"\n",
			"logging.format",
		},
	}
	for _, c := range cases {
		path := writeTempConfig(t, c.content)
		_, err := LoadConfig(path)
		os.Remove(path)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.wantErr) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.wantErr)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yml"); err == nil {
		t.Error("expected error for missing file")
	}
}
