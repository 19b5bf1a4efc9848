package entity

import (
	"errors"
	"fmt"
)

// Standard domain errors
var (
	ErrMissingCredentials = errors.New("missing language-model credentials")
	ErrEmptyQuestion      = errors.New("question text is empty")
	ErrEmptyReply         = errors.New("language model returned an empty reply")
	ErrSessionNotFound    = errors.New("chat session not found")
)

// Pipeline stages used by InferenceError.
const (
	StageLoad      = "load"
	StageTransform = "transform"
	StagePredict   = "predict"
)

// InferenceError wraps a prediction-pipeline failure with the stage it
// happened in, so a sample-level failure is diagnosable from the message
// alone.
type InferenceError struct {
	Stage string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("pipeline %s failed: %v", e.Stage, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
