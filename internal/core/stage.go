package core

// Stage is one named unit of work within a staged workflow: a shell command
// executed in the run's working directory.
type Stage struct {
	Name    string
	Command string
}

// Staged is the contract the built-in execution backends assert on a
// submitted workflow: an ordered list of stages to run.
type Staged interface {
	Workflow
	Stages() []Stage
}
