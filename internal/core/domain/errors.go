package domain

import "fmt"

// Pipeline stages, used to attribute failures to the step that produced them.
const (
	StageConfigure  = "configure"
	StageExtract    = "extract"
	StageTranscribe = "transcribe"
	StagePersist    = "persist"
)

// StageError is a stage-aware pipeline failure.
type StageError struct {
	Stage   string
	Message string
	Err     error
}

// Error formats the failure as a one-line, user-readable explanation.
func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
