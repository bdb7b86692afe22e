/*
File   : pitlang/config/config.go
Package: config

Optional interpreter defaults loaded from a .pitlang.yaml next to the
script (or the working directory for the REPL). Everything has a built-in
default; a missing or unreadable file is not an error.
*/
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up beside the script.
const FileName = ".pitlang.yaml"

// Config holds the tunable interpreter defaults.
type Config struct {
	Version        string `yaml:"version"`
	Prompt         string `yaml:"prompt"`
	RecursionLimit int    `yaml:"recursion_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:        "v1.0.0",
		Prompt:         "pit >>> ",
		RecursionLimit: 5000,
	}
}

// Load reads dir/.pitlang.yaml over the defaults. A missing file yields
// the defaults; fields the file leaves out, or sets empty or non-positive,
// keep their defaults; a file that fails to decode (including one field
// of the wrong type) falls back to the defaults entirely.
func Load(dir string) *Config {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default()
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = Default().RecursionLimit
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	if cfg.Version == "" {
		cfg.Version = Default().Version
	}
	return cfg
}
