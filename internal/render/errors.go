package render

import (
	"errors"
	"fmt"
)

// ErrMissingLogo marks a game skipped before any work because at least one
// side has no logo URL.
var ErrMissingLogo = errors.New("missing logo url")

// Pipeline stages reported by StageError.
const (
	StageDownload  = "download"
	StageResize    = "resize"
	StageClean     = "clean"
	StageGlow      = "glow"
	StageComposite = "composite"
	StageAnnotate  = "annotate"
	StagePublish   = "publish"
)

// StageError wraps a failure with the pipeline stage it happened in, so
// callers can bucket download problems separately from render problems.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
