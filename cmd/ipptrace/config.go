package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds persistent tool settings loaded from a YAML file.
type Config struct {
	// Interface restricts discovery to one network interface.
	Interface string `yaml:"interface,omitempty"`

	// ShowOffsets enables byte offsets in message output by default.
	ShowOffsets bool `yaml:"show_offsets,omitempty"`

	// HistoryFile is the shell history location.
	HistoryFile string `yaml:"history_file,omitempty"`
}

// loadConfig reads the config file at path, falling back to
// ~/.config/ipptrace/config.yaml when path is empty. A missing file
// yields the zero config.
func loadConfig(path string) Config {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}
		}
		path = home + "/.config/ipptrace/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config %s: %v\n", path, err)
		return Config{}
	}
	return cfg
}
