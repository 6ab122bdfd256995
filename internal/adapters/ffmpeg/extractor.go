package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// commandRunner abstracts process execution for testability.
type commandRunner interface {
	// Run executes one command and returns its captured stderr.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner executes commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// Extractor re-encodes a video's audio track to mp3 using the local ffmpeg
// binary.
type Extractor struct {
	binaryPath string
	runner     commandRunner
}

// NewExtractor creates an extractor that assumes ffmpeg is in PATH.
func NewExtractor() *Extractor {
	return &Extractor{
		binaryPath: "ffmpeg",
		runner:     execRunner{},
	}
}

// NewExtractorForTests constructs an extractor with an injectable runner.
func NewExtractorForTests(binaryPath string, runner commandRunner) *Extractor {
	return &Extractor{binaryPath: binaryPath, runner: runner}
}

// Extract re-encodes the audio stream of the video at videoPath into an mp3
// file at audioPath, overwriting any existing file there. On any failure a
// partial output file is removed before the error is returned.
func (e *Extractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("cannot access input video %s: %w", videoPath, err)
	}

	stderr, err := e.runner.Run(ctx, e.binaryPath, buildArgs(videoPath, audioPath)...)
	if err != nil {
		removePartial(audioPath)
		return fmt.Errorf("ffmpeg failed: %w: %s", err, lastLine(stderr))
	}

	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("ffmpeg completed but no audio file at %s: %w", audioPath, err)
	}
	return nil
}

// buildArgs builds the ffmpeg CLI args for audio-only mp3 output.
func buildArgs(videoPath, audioPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", videoPath,
		"-vn",
		"-codec:a", "libmp3lame",
		audioPath,
	}
}

// removePartial deletes a half-written output file, if one exists.
func removePartial(audioPath string) {
	if _, err := os.Stat(audioPath); err == nil {
		_ = os.Remove(audioPath)
	}
}

// lastLine returns the final non-empty line of ffmpeg's stderr, which is
// where ffmpeg puts the actual failure reason.
func lastLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "no ffmpeg output"
}
