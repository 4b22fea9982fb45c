package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkDir       string // directory to create/enter before running
	ParameterFile string // parameter source file
	PathFile      string // path source file

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ParameterFile == "" {
		return nil, errors.New("ParameterFile is a required configuration field and cannot be empty")
	}
	if cfg.PathFile == "" {
		return nil, errors.New("PathFile is a required configuration field and cannot be empty")
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	return &cfg, nil
}
