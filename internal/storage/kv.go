package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// PreferencesKV stores values in the fyne app preferences.
type PreferencesKV struct {
	prefs fyne.Preferences
}

// NewPreferencesKV wraps fyne preferences.
func NewPreferencesKV(prefs fyne.Preferences) *PreferencesKV {
	return &PreferencesKV{prefs: prefs}
}

// Get returns the stored value or an empty string.
func (kv *PreferencesKV) Get(key string) (string, error) {
	return kv.prefs.String(key), nil
}

// Set stores the value.
func (kv *PreferencesKV) Set(key, value string) error {
	kv.prefs.SetString(key, value)
	return nil
}

// FileKV stores values in a YAML file.
type FileKV struct {
	mu   sync.Mutex
	path string
}

// NewFileKV creates a YAML backed store at path.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// DefaultFilePath returns the settings file path inside the app config dir.
func DefaultFilePath(appConfigDir string) string {
	return filepath.Join(appConfigDir, settingsFileName)
}

// Get returns the value for key. A missing file yields an empty string.
func (kv *FileKV) Get(key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	values, err := kv.readLocked()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set writes the value for key, keeping other keys.
func (kv *FileKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	values, err := kv.readLocked()
	if err != nil {
		// An unreadable file is replaced rather than blocking saves.
		values = map[string]string{}
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(kv.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	serialized, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(kv.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func (kv *FileKV) readLocked() (map[string]string, error) {
	values := map[string]string{}
	rawData, err := os.ReadFile(kv.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return values, fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(rawData, &values); err != nil {
		return map[string]string{}, fmt.Errorf("parse settings yaml: %w", err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}
