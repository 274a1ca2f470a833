package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl manifest file or directory
	Target       string // optional single-target filter; empty means all
	Format       string // output format name, see the emit package
	OutputPath   string // file to write; empty means stdout

	LogFormat   string
	LogLevel    string
	WorkerCount int
	Watch       bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("WorkerCount must be at least 1")
	}

	return &cfg, nil
}
