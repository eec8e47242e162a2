package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jackielii/authpages/plugins"
	"gopkg.in/yaml.v3"
)

// Config is the server configuration. Values come from the YAML file named
// by --config, then from AUTHPAGES_* environment variables and flags.
type Config struct {
	Addr         string             `yaml:"addr"`
	SiteBaseURL  string             `yaml:"site_base_url"`
	SiteBasePath string             `yaml:"site_base_path"`
	LogLevel     string             `yaml:"log_level"`
	LogFormat    string             `yaml:"log_format"`
	Context      map[string]any     `yaml:"context"`
	ViewPaths    *plugins.ViewPaths `yaml:"view_paths"`
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.SiteBaseURL == "" {
		c.SiteBaseURL = "http://localhost:8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (Config, error) {
	vp := plugins.DefaultViewPaths()
	cfg := Config{ViewPaths: &vp}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c Config) pluginConfig() plugins.Config {
	return plugins.Config{
		SiteBaseURL:  c.SiteBaseURL,
		SiteBasePath: c.SiteBasePath,
		Context:      c.Context,
		ViewPaths:    c.ViewPaths,
	}
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
