package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sift/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Validation.OnMissingID != config.MissingIDAbort {
		t.Fatalf("unexpected on_missing_id default: %q", cfg.Validation.OnMissingID)
	}
	if cfg.Report.Format != "auto" {
		t.Fatalf("unexpected report format default: %q", cfg.Report.Format)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[logging]
level = "DEBUG"
format = "JSON"

[validation]
on_missing_id = "Skip"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolution = (%q, %v), want (%q, true)", resolved, exists, path)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("values not normalized: %+v", cfg.Logging)
	}
	if cfg.Validation.OnMissingID != config.MissingIDSkip {
		t.Fatalf("on_missing_id = %q, want skip", cfg.Validation.OnMissingID)
	}
	if cfg.Report.Format != "auto" {
		t.Fatalf("unset report format should default to auto, got %q", cfg.Report.Format)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad level":         "[logging]\nlevel = \"verbose\"\n",
		"bad format":        "[logging]\nformat = \"xml\"\n",
		"bad missing id":    "[validation]\non_missing_id = \"maybe\"\n",
		"bad report format": "[report]\nformat = \"speech\"\n",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadExpandsLogDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\ndir = \"~/logs\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "logs"); cfg.Logging.Dir != want {
		t.Fatalf("logging.dir = %q, want %q", cfg.Logging.Dir, want)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[validation]") {
		t.Fatal("sample config missing [validation] section")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("sample config not detected")
	}
	defaults := config.Default()
	if cfg.Logging.Level != defaults.Logging.Level ||
		cfg.Validation.OnMissingID != defaults.Validation.OnMissingID ||
		cfg.Report.Format != defaults.Report.Format {
		t.Fatalf("sample values diverge from defaults: %+v", cfg)
	}
}

// chdir mirrors t.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}
