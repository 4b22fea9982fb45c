// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading configuration
// from source files.
//
// The ParameterSet is the single source of truth for every later bootstrap
// step. Concrete implementations of the Loader interface, such as for HCL,
// are provided in separate packages.
package config
