// Package core defines the contracts the bootstrap depends on (Workflow,
// System, and Configurator) plus the Dispatch handoff that transfers
// control from configuration to execution.
//
// The bootstrap is deliberately ignorant of what a System does with a
// submitted Workflow (run in-process, shell out per stage, enqueue to a
// batch scheduler). Swapping the execution backend is a configuration file
// change, never a bootstrap code change.
package core
