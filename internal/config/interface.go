package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads a single configuration file and translates its top-level
	// name bindings into a ParameterSet. Loading the same unchanged file
	// twice yields equal ParameterSets.
	Load(ctx context.Context, path string) (*ParameterSet, error)
}
