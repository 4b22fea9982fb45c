// Package registry provides the shared component store for a single
// bootstrap run.
//
// The Registry maps role names (e.g. "parameters", "paths", "workflow",
// "system") to the one live object registered for that role. It is created
// once in app.NewApp and passed explicitly to every step that needs it;
// there is no process-global instance. Arbitrary additional roles may be
// registered by a configuration step (e.g. "solver", "optimizer") without
// any change here.
//
// The registry enforces no registration ordering. The bootstrap sequence in
// app.Run guarantees that "parameters" and "paths" are registered before the
// configuration step runs, and the configuration step must register
// "workflow" and "system" before the dispatcher runs. A violation surfaces
// as ErrUnknownRole at resolve time.
package registry
