// Package configure provides the default configuration step.
//
// The Step holds factory registries for workflow and system implementations,
// keyed by the names users write in their parameter file. Built-in
// implementations register themselves through Register functions, mirroring
// how execution modules attach to the runner. During Configure, the step
// reads the "workflow" and "system" parameter keys, invokes the matching
// factories, and registers the constructed objects so the dispatcher can
// resolve them.
package configure
