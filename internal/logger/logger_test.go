package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	Close()
	Debug("ignored")
	Info("ignored", "k", 1)
	Warn("ignored")
	Error("ignored")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fewer.log")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("hidden at info level")
	Warn("filter rejected", "expr", "/(/")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "filter rejected") || !strings.Contains(out, "/(/") {
		t.Fatalf("log missing warning: %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug line written at info level: %q", out)
	}
}

func TestLogPathEnv(t *testing.T) {
	t.Setenv("FEWER_LOG_FILE", "/tmp/custom.log")
	if p, err := LogPath(); err != nil || p != "/tmp/custom.log" {
		t.Fatalf("LogPath = %q, %v", p, err)
	}
	t.Setenv("FEWER_LOG_FILE", "")
	t.Setenv("FEWER_CONFIG_HOME", "/tmp/cfg")
	if p, err := LogPath(); err != nil || p != "/tmp/cfg/fewer.log" {
		t.Fatalf("LogPath = %q, %v", p, err)
	}
}
