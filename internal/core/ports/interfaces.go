package ports

import "context"

// Extractor defines the contract for isolating a video's audio track into a
// standalone audio file.
type Extractor interface {
	// Extract re-encodes the audio stream of the video at videoPath into
	// audioPath, overwriting any existing file there. On failure no partial
	// output file remains.
	Extract(ctx context.Context, videoPath, audioPath string) error
}

// Transcriber defines the contract for converting an audio file into text.
type Transcriber interface {
	// Transcribe takes a local path to an audio file and returns its
	// transcription as plain text.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TranscriptStore defines the contract for persisting transcripts and for the
// lifecycle of the intermediate audio artifact.
type TranscriptStore interface {
	// IntermediatePath returns the fixed path of the intermediate audio file.
	IntermediatePath() string

	// TranscriptPath derives the output path for a given input video.
	TranscriptPath(videoPath string) string

	// SaveTranscript writes the transcript for videoPath, creating the output
	// directory on demand, and returns the path written.
	SaveTranscript(ctx context.Context, videoPath, text string) (string, error)

	// RemoveIntermediate deletes the intermediate audio file. A file that is
	// already absent is not an error.
	RemoveIntermediate(ctx context.Context, audioPath string) error
}

// ProgressIndicator is a background status animation shown while a blocking
// call is in flight. Stop blocks until the animation has terminated and is a
// no-op when Start was never called.
type ProgressIndicator interface {
	Start()
	Stop()
}
