package config

import (
	"os"
	"time"

	"github.com/san-kum/hanoisim/internal/playback"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDisks    = playback.DefaultDisks
	DefaultSpeedMs  = 800
	DefaultPolicy   = "next"
	DefaultLogLevel = "info"
	DefaultTheme    = "classic"
)

type Config struct {
	Disks       int    `yaml:"disks"`
	SpeedMs     int    `yaml:"speed_ms"`
	SpeedPolicy string `yaml:"speed_policy"`
	Paused      bool   `yaml:"start_paused"`
	Theme       string `yaml:"theme"`
	LogLevel    string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Disks:       DefaultDisks,
		SpeedMs:     DefaultSpeedMs,
		SpeedPolicy: DefaultPolicy,
		Theme:       DefaultTheme,
		LogLevel:    DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values. base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Clamp()
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clamp pulls disk count and speed into the ranges the visualization supports.
func (c *Config) Clamp() {
	c.Disks = playback.ClampDisks(c.Disks)
	c.SpeedMs = int(playback.ClampSpeed(time.Duration(c.SpeedMs)*time.Millisecond) / time.Millisecond)
	if c.SpeedPolicy != "immediate" {
		c.SpeedPolicy = DefaultPolicy
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

func (c *Config) Policy() playback.SpeedPolicy {
	return playback.ParseSpeedPolicy(c.SpeedPolicy)
}
