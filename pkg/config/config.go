package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is shardkeeper's top-level server configuration, loaded from a
// single YAML file: read the bytes, yaml.Unmarshal into a plain struct,
// done.
type Config struct {
	ListenAddr   string `yaml:"listenAddr"`
	AdminAddr    string `yaml:"adminAddr"`
	DataDir      string `yaml:"dataDir"`
	MaxPlayers   int    `yaml:"maxPlayers"`
	ViewDistance int    `yaml:"viewDistance"`
	TickRate     int    `yaml:"tickRate"`
	LogLevel     string `yaml:"logLevel"`
	LogJSON      bool   `yaml:"logJSON"`
}

const (
	defaultListenAddr   = "0.0.0.0:25565"
	defaultAdminAddr    = "127.0.0.1:9100"
	defaultDataDir      = "./data"
	defaultMaxPlayers   = 20
	defaultViewDistance = 10
	defaultTickRate     = 20
	defaultLogLevel     = "info"
)

// TickInterval returns the duration between ticks implied by TickRate.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// applyDefaults fills in any zero-valued field after unmarshal, so a
// partial or empty YAML file still produces a runnable configuration.
func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.AdminAddr == "" {
		c.AdminAddr = defaultAdminAddr
	}
	if c.DataDir == "" {
		c.DataDir = defaultDataDir
	}
	if c.MaxPlayers == 0 {
		c.MaxPlayers = defaultMaxPlayers
	}
	if c.ViewDistance == 0 {
		c.ViewDistance = defaultViewDistance
	}
	if c.TickRate == 0 {
		c.TickRate = defaultTickRate
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and parses the YAML configuration file at path, applying
// defaults to any field the file left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}
