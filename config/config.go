// Package config loads gridpath settings from a YAML file.
//
// Every field has a default (see Default), so a config file only needs
// the keys it wants to change:
//
//	log:
//	  level: debug     # debug | info | warn | error
//	  format: json     # text | json
//	random:
//	  size: 48
//	  seed: 7          # 0 picks a time-based seed
//	render:
//	  color: true
//	  cell_size: 12
//	batch:
//	  workers: 8       # 0 uses every CPU
//	serve:
//	  addr: ":9090"
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Random RandomConfig `yaml:"random"`
	Render RenderConfig `yaml:"render"`
	Batch  BatchConfig  `yaml:"batch"`
	Serve  ServeConfig  `yaml:"serve"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RandomConfig drives the striped random-map command.
type RandomConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`
}

// RenderConfig controls terminal and PNG output.
type RenderConfig struct {
	Color    bool `yaml:"color"`
	CellSize int  `yaml:"cell_size"`
}

// BatchConfig controls concurrent query solving.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// ServeConfig controls the HTTP server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Random: RandomConfig{Size: 32},
		Render: RenderConfig{CellSize: 16},
		Batch:  BatchConfig{Workers: 0},
		Serve:  ServeConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	if c.Random.Size < 2 {
		return fmt.Errorf("%w: random.size %d (want ≥ 2)", ErrInvalid, c.Random.Size)
	}
	if c.Render.CellSize <= 0 {
		return fmt.Errorf("%w: render.cell_size %d (want > 0)", ErrInvalid, c.Render.CellSize)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers %d (want ≥ 0)", ErrInvalid, c.Batch.Workers)
	}
	if c.Serve.Addr == "" {
		return fmt.Errorf("%w: serve.addr is empty", ErrInvalid)
	}
	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}
	return lvl, nil
}
