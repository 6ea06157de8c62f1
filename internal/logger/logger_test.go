package logger

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Logger = nil
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
	if _, err := Writer().Write([]byte("discarded\n")); err != nil {
		t.Fatalf("Writer() on nil logger: %v", err)
	}
}

func TestInitWritesLogFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { Logger = nil })

	if err := Init(Config{Debug: false, LogDir: logDir}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}

	Info("timer started", "phase", "focus")
	Debug("hidden at info level")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "timer started") {
		t.Errorf("log file missing info line: %q", content)
	}
	if strings.Contains(content, "hidden at info level") {
		t.Errorf("debug line written at info level: %q", content)
	}
}

func TestInitDebugLevel(t *testing.T) {
	logDir := t.TempDir()
	t.Cleanup(func() { Logger = nil })

	if err := Init(Config{Debug: true, LogDir: logDir}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Debug("visible in debug")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "visible in debug") {
		t.Errorf("debug line missing: %q", string(data))
	}
}

func TestFatalLogsAndExits(t *testing.T) {
	if dir := os.Getenv("EYETIMER_FATAL_LOG_DIR"); dir != "" {
		if err := Init(Config{LogDir: dir, FileOnly: true}); err != nil {
			os.Exit(2)
		}
		Fatal("command failed", "err", "boom")
		return
	}

	logDir := t.TempDir()
	cmd := exec.Command(os.Args[0], "-test.run=^TestFatalLogsAndExits$")
	cmd.Env = append(os.Environ(), "EYETIMER_FATAL_LOG_DIR="+logDir)
	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("Fatal exit = %v, want status 1", err)
	}
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "command failed") || !strings.Contains(string(data), "boom") {
		t.Errorf("fatal line missing: %q", string(data))
	}
}
