package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runFewer(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FEWER_CONFIG_HOME", t.TempDir())
	t.Setenv("FEWER_LOG_FILE", "")

	var out bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return strings.ReplaceAll(out.String(), "\r\n", "\n"), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestPrintsFilteredLinesWhenNotATerminal(t *testing.T) {
	path := writeInput(t, "GET /a 200\nGET /b 500\nPOST /c 500\nGET /d 404\n")
	out, err := runFewer(t, "", "--regex", "GET", "-e", "!404$", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "GET /a 200\nGET /b 500\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestReadsStandardInput(t *testing.T) {
	out, err := runFewer(t, "one\ntwo\nthree\n", "--regex", "/T/i")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "two\nthree\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestDisplayFiltersDoNotChangeOutput(t *testing.T) {
	path := writeInput(t, "a-b\n")
	out, err := runFewer(t, "", "--df", "/-/+/", "--df", "|a|bold", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "a-b\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestConfigFiltersApply(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("filters = [\"keep\"]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	path := writeInput(t, "keep 1\ndrop\nkeep 2\n")
	out, err := runFewer(t, "", "--config", cfgPath, "--regex", "2", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "keep 2\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestExitCodes(t *testing.T) {
	path := writeInput(t, "x\n")
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing file", []string{missing}, exitNoInput},
		{"too many files", []string{path, path}, exitUsage},
		{"unknown flag", []string{"--bogus", path}, exitUsage},
		{"bad tab width", []string{"--tabwidth", "0", path}, exitUsage},
		{"bad regex", []string{"--regex", "/(/", path}, exitFailure},
		{"bad flags", []string{"--regex", "/x/q", path}, exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runFewer(t, "", tt.args...)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if got := exitCode(err); got != tt.want {
				t.Fatalf("exitCode(%v) = %d, want %d", err, got, tt.want)
			}
		})
	}
}

func TestHelpDocumentsFilterSyntax(t *testing.T) {
	out, err := runFewer(t, "", "--help")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "/PATTERN/REPLACEMENT/") || !strings.Contains(out, "--regex") {
		t.Fatalf("help output missing filter syntax:\n%s", out)
	}
}
