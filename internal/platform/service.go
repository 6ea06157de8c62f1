package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultEntryName = "eyetimer"

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	AppDir(appName string) (string, error)
	// EnableAutostart registers execPath with args to run at login.
	EnableAutostart(appName, execPath string, args ...string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// AppDir returns the per-app directory below the config dir, creating it.
func (service *platformService) AppDir(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, entrySlug(appName))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create app dir: %w", err)
	}
	return dir, nil
}

// entrySlug lowercases the app name and replaces spaces, for file and label names.
func entrySlug(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = defaultEntryName
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
