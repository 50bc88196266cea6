// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds the server settings.
type Config struct {
	Host            string
	Port            int
	StaticDir       string
	ShutdownTimeout time.Duration
}

// Addr is the listen address, e.g. "0.0.0.0:5000".
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads PORT, HOST, STATIC_DIR and SHUTDOWN_TIMEOUT from the
// environment, falling back to defaults for unset keys.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("static_dir", "web")
	v.SetDefault("shutdown_timeout", "10s")
	v.AutomaticEnv()

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: %w", v.GetString("port"), err)
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d: out of range", port)
	}

	timeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return Config{
		Host:            v.GetString("host"),
		Port:            port,
		StaticDir:       v.GetString("static_dir"),
		ShutdownTimeout: timeout,
	}, nil
}
