// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the bootstrap lifecycle (load parameters,
// load paths, expand paths, register both, enter the working directory, run
// the configuration step, dispatch), decoupled from any specific entrypoint
// like a CLI.
package app
