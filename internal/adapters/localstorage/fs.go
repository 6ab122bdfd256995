package localstorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// OutputDirName is the directory transcripts are written under.
	OutputDirName = "output"
	// TranscriptSuffix is appended to the input video's basename.
	TranscriptSuffix = "_gemini_transcription.txt"
	// IntermediateAudioFilename is the fixed name of the extracted audio file.
	IntermediateAudioFilename = "temp_audio_for_transcription.mp3"
)

// TranscriptStore implements ports.TranscriptStore on the local filesystem.
type TranscriptStore struct {
	BaseDir string
}

// NewTranscriptStore creates a new TranscriptStore instance.
func NewTranscriptStore(baseDir string) *TranscriptStore {
	return &TranscriptStore{BaseDir: baseDir}
}

// IntermediatePath returns the fixed path of the intermediate audio file.
func (s *TranscriptStore) IntermediatePath() string {
	return filepath.Join(s.BaseDir, IntermediateAudioFilename)
}

// TranscriptPath derives the output path from the input video's basename:
// last extension stripped, fixed suffix appended, under the output directory.
// The input's directory does not influence the result.
func (s *TranscriptStore) TranscriptPath(videoPath string) string {
	base := filepath.Base(videoPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(s.outputDir(), name+TranscriptSuffix)
}

// SaveTranscript writes the transcript as UTF-8 text, creating the output
// directory on demand and overwriting any prior transcript of the same
// derived name. A failed write removes the partial file before the error is
// returned.
func (s *TranscriptStore) SaveTranscript(ctx context.Context, videoPath, text string) (string, error) {
	if err := os.MkdirAll(s.outputDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.outputDir(), err)
	}

	path := s.TranscriptPath(videoPath)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to save transcript %s: %w", path, err)
	}
	return path, nil
}

// RemoveIntermediate deletes the intermediate audio file. A file that is
// already absent is not an error.
func (s *TranscriptStore) RemoveIntermediate(ctx context.Context, audioPath string) error {
	if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove intermediate audio %s: %w", audioPath, err)
	}
	return nil
}

func (s *TranscriptStore) outputDir() string {
	return filepath.Join(s.BaseDir, OutputDirName)
}
