package domain

import "fmt"

// FailureStage names the pipeline stage where a reference was absorbed.
type FailureStage string

// Failure stages.
const (
	StageFetch FailureStage = "fetch"
	StageBody  FailureStage = "body"
)

// Failure records a per-reference problem that did not abort the run.
type Failure struct {
	Err       error
	Stage     FailureStage
	Reference IssueReference
}

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Stage, f.Reference, f.Err)
}

// Unwrap returns the underlying cause.
func (f Failure) Unwrap() error {
	return f.Err
}

// RunPhase is a state of a report run.
type RunPhase string

// Run phases. FAILED is reachable from Assembling and Rendering only.
const (
	PhaseIdle       RunPhase = "idle"
	PhaseFetching   RunPhase = "fetching"
	PhaseAssembling RunPhase = "assembling"
	PhaseRendering  RunPhase = "rendering"
	PhaseDone       RunPhase = "done"
	PhaseFailed     RunPhase = "failed"
)
