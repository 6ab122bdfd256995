package domain

import "time"

// Run represents a single transcription run.
type Run struct {
	ID        string
	VideoPath string
	CreatedAt time.Time
}

// RunResult holds the outcome of a completed run.
type RunResult struct {
	Run          Run
	AudioPath    string
	OutputPath   string
	Success      bool
	ErrorMessage string
	CompletedAt  time.Time
}
