package localstorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptPathDerivation(t *testing.T) {
	s := NewTranscriptStore("base")

	cases := []struct {
		name      string
		videoPath string
		want      string
	}{
		{"plain", "lecture.mp4", "lecture_gemini_transcription.txt"},
		{"nested dir ignored", "/home/user/videos/lecture.mp4", "lecture_gemini_transcription.txt"},
		{"only last extension stripped", "talk.v2.mov", "talk.v2_gemini_transcription.txt"},
		{"no extension", "recording", "recording_gemini_transcription.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.TranscriptPath(tc.videoPath)
			assert.Equal(t, filepath.Join("base", OutputDirName, tc.want), got)
		})
	}
}

func TestSaveTranscriptCreatesOutputDir(t *testing.T) {
	base := t.TempDir()
	s := NewTranscriptStore(base)

	path, err := s.SaveTranscript(context.Background(), "lecture.mp4", "hello transcript")
	require.NoError(t, err)
	assert.Equal(t, s.TranscriptPath("lecture.mp4"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello transcript", string(data))
}

func TestSaveTranscriptOverwritesExisting(t *testing.T) {
	base := t.TempDir()
	s := NewTranscriptStore(base)

	_, err := s.SaveTranscript(context.Background(), "lecture.mp4", "first")
	require.NoError(t, err)
	path, err := s.SaveTranscript(context.Background(), "lecture.mp4", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaveTranscriptFailsWhenOutputDirBlocked(t *testing.T) {
	base := t.TempDir()
	// A file where the output directory should be makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(base, OutputDirName), []byte("x"), 0644))

	s := NewTranscriptStore(base)
	_, err := s.SaveTranscript(context.Background(), "lecture.mp4", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory")
}

func TestRemoveIntermediate(t *testing.T) {
	base := t.TempDir()
	s := NewTranscriptStore(base)

	audioPath := s.IntermediatePath()
	assert.Equal(t, filepath.Join(base, IntermediateAudioFilename), audioPath)

	require.NoError(t, os.WriteFile(audioPath, []byte("mp3"), 0644))
	require.NoError(t, s.RemoveIntermediate(context.Background(), audioPath))
	assert.NoFileExists(t, audioPath)

	// Absence is not an error.
	require.NoError(t, s.RemoveIntermediate(context.Background(), audioPath))
}
