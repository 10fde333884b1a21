package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sift/internal/validate"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
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

func writeRecords(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write records: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const scenarioRecords = `[
	{"name": "0", "address": "1",  "zip": "00000", "id": "7152"},
	{"name": "0", "address": "1",  "zip": "00000", "id": "9913"},
	{"name": "2", "address": "3",  "zip": "00004", "id": "2467"},
	{"name": "0", "address": null, "zip": "00000", "id": "1192"},
	{"name": "0", "address": null, "zip": "00000", "id": "9222"}
]`

func TestCheckReportsBadIdentifiers(t *testing.T) {
	isolate(t)
	path := writeRecords(t, scenarioRecords)

	out, err := runCommand(t, "check", path, "--output", "lines")

	var findings *findingsError
	if !errors.As(err, &findings) {
		t.Fatalf("want findingsError, got %v", err)
	}
	if findings.count != 4 {
		t.Fatalf("findings.count = %d, want 4", findings.count)
	}
	if got, want := out, "1192\n7152\n9222\n9913\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestCheckCleanFileSucceeds(t *testing.T) {
	isolate(t)
	path := writeRecords(t, `[
		{"name": "a", "address": "b", "zip": "00000", "id": "1"},
		{"name": "c", "address": "d", "zip": "11111-2222", "id": "2"}
	]`)

	out, err := runCommand(t, "check", path, "--output", "lines")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestCheckAbortsOnMissingIdentifier(t *testing.T) {
	isolate(t)
	path := writeRecords(t, `[
		{"name": "a", "address": "b", "zip": "00000", "id": "1"},
		{"name": "a", "address": "b", "zip": "00001"}
	]`)

	_, err := runCommand(t, "check", path, "--output", "lines")
	var missing *validate.MissingIDError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingIDError, got %v", err)
	}
	if missing.Index != 1 {
		t.Fatalf("missing.Index = %d, want 1", missing.Index)
	}
}

func TestCheckSkipPolicyContinuesPastMalformedRecords(t *testing.T) {
	isolate(t)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[validation]\non_missing_id = \"skip\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	path := writeRecords(t, `[
		{"name": "a", "address": "b", "zip": "00001"},
		{"name": "", "address": "b", "zip": "00000", "id": "3"}
	]`)

	out, err := runCommand(t, "--config", configPath, "check", path, "--output", "json")
	var findings *findingsError
	if !errors.As(err, &findings) {
		t.Fatalf("want findingsError, got %v", err)
	}
	for _, want := range []string{`"skipped": 1`, `"3"`, "name is blank"} {
		if !strings.Contains(out, want) {
			t.Fatalf("json output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckRejectsUnknownOutputFormat(t *testing.T) {
	isolate(t)
	path := writeRecords(t, `[]`)

	_, err := runCommand(t, "check", path, "--output", "speech")
	if err == nil || !strings.Contains(err.Error(), "unknown report format") {
		t.Fatalf("want format error, got %v", err)
	}
}
