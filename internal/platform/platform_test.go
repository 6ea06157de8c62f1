package platform

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestEntrySlug(t *testing.T) {
	tests := map[string]string{
		"EyeTimer":        "eyetimer",
		" Eye Timer ":     "eye-timer",
		"":                "eyetimer",
		"20-20-20 Helper": "20-20-20-helper",
	}
	for input, want := range tests {
		if got := entrySlug(input); got != want {
			t.Errorf("entrySlug(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestPortFromNameIsStable(t *testing.T) {
	first := portFromName("EyeTimer")
	if first != portFromName("EyeTimer") {
		t.Fatal("port should be deterministic")
	}
	if first < 20000 || first > 39999 {
		t.Errorf("port %d out of range", first)
	}
}

func TestSingleInstance(t *testing.T) {
	name := "eyetimer-test-" + strings.ReplaceAll(t.Name(), "/", "-")
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second acquire error = %v, want ErrAlreadyRunning", err)
	}
	if guard.Address() == "" {
		t.Error("Address() should be set")
	}
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Errorf("Release() on nil guard = %v", err)
	}
}

func TestAppDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("HOME", root)
	t.Setenv("AppData", root)

	dir, err := NewService().AppDir("EyeTimer")
	if err != nil {
		t.Fatalf("AppDir() error = %v", err)
	}
	if filepath.Base(dir) != "eyetimer" {
		t.Errorf("AppDir() = %q", dir)
	}
}
