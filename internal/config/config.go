package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = 5000
	defaultTick = time.Second
	minTick     = 10 * time.Millisecond

	configName = "config"
)

// Config holds process level settings.
type Config struct {
	Host  string
	Port  int
	Debug bool
	Tick  time.Duration
	// Dir is the app config directory, where config.yaml, settings and logs live.
	Dir string
}

// Addr returns host:port for the HTTP surface.
func (cfg Config) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// Load reads defaults, an optional config.yaml in dir, then the environment.
// Environment values win over the file.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetDefault("host", defaultHost)
	v.SetDefault("port", defaultPort)
	v.SetDefault("debug", "false")
	v.SetDefault("tick", defaultTick.String())

	for key, env := range map[string]string{
		"host":  "HOST",
		"port":  "PORT",
		"debug": "DEBUG",
		"tick":  "EYETIMER_TICK",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read %s: %w", filepath.Join(dir, configName+".yaml"), err)
			}
		}
	}

	port := v.GetInt("port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid port %q", v.GetString("port"))
	}

	tick, err := time.ParseDuration(v.GetString("tick"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid tick interval: %w", err)
	}
	if tick < minTick {
		tick = minTick
	}

	host := strings.TrimSpace(v.GetString("host"))
	if host == "" {
		host = defaultHost
	}

	return Config{
		Host:  host,
		Port:  port,
		Debug: parseDebug(v.GetString("debug")),
		Tick:  tick,
		Dir:   dir,
	}, nil
}

// parseDebug accepts 1, true and yes in any case.
func parseDebug(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
