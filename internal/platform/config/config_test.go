package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `script:
  path: payroll.txt

runner:
  policy: failopen
  chronograph: true

log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Script.Path != "payroll.txt" {
		t.Errorf("unexpected script path: %s", cfg.Script.Path)
	}
	if cfg.Runner.Policy != PolicyFailOpen {
		t.Errorf("unexpected policy: %s", cfg.Runner.Policy)
	}
	if !cfg.Runner.Chronograph {
		t.Error("expected chronograph to be enabled")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("unexpected log level: %s", cfg.Log.Level)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `queue:
  path: queue.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Runner.Policy != PolicyHalt {
		t.Errorf("expected the default policy halt, got %s", cfg.Runner.Policy)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected the default log level info, got %s", cfg.Log.Level)
	}
}

func TestLoad_MissingInput(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "{}")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when neither script nor queue is set")
	}
}

func TestLoad_ExclusiveInputs(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `script:
  path: payroll.txt
queue:
  path: queue.json
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when both script and queue are set")
	}
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `script:
  path: payroll.txt
runner:
  policy: retry
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for an unknown policy")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `script:
  path: payroll.txt
log:
  level: shout
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for an unknown log level")
	}
}
