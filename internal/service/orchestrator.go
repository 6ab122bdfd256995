package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"vidscribe/internal/core/domain"
	"vidscribe/internal/core/ports"
)

// Orchestrator coordinates the transcription pipeline: audio extraction,
// remote transcription with a progress indicator, and transcript persistence.
type Orchestrator struct {
	extractor   ports.Extractor
	transcriber ports.Transcriber
	store       ports.TranscriptStore
	progress    ports.ProgressIndicator
	logger      zerolog.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	extractor ports.Extractor,
	transcriber ports.Transcriber,
	store ports.TranscriptStore,
	progress ports.ProgressIndicator,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		extractor:   extractor,
		transcriber: transcriber,
		store:       store,
		progress:    progress,
		logger:      logger,
	}
}

// Run executes a complete transcription run for the given video file. The
// intermediate audio file never outlives the run: once extraction has
// succeeded, progress shutdown and audio removal happen on every exit path,
// in that order.
func (o *Orchestrator) Run(ctx context.Context, videoPath string) (*domain.RunResult, error) {
	run := domain.Run{
		ID:        uuid.New().String(),
		VideoPath: videoPath,
		CreatedAt: time.Now().UTC(),
	}
	result := &domain.RunResult{Run: run, Success: false}

	o.logger.Info().Str("run", run.ID).Str("video", videoPath).Msg("starting transcription run")

	audioPath := o.store.IntermediatePath()
	result.AudioPath = audioPath

	o.logger.Info().Str("run", run.ID).Msg("extracting audio from video")
	if err := o.extractor.Extract(ctx, videoPath, audioPath); err != nil {
		return result, o.fail(result, domain.StageExtract, "audio extraction failed", err)
	}
	o.logger.Info().Str("run", run.ID).Str("audio", audioPath).Msg("audio extracted")

	defer func() {
		if err := o.store.RemoveIntermediate(ctx, audioPath); err != nil {
			o.logger.Warn().Str("run", run.ID).Err(err).Msg("failed to remove intermediate audio")
		} else {
			o.logger.Info().Str("run", run.ID).Str("audio", audioPath).Msg("intermediate audio removed")
		}
	}()
	defer o.progress.Stop()

	o.logger.Info().Str("run", run.ID).Msg("sending audio for transcription")
	o.progress.Start()
	text, err := o.transcriber.Transcribe(ctx, audioPath)
	o.progress.Stop()
	if err != nil {
		return result, o.fail(result, domain.StageTranscribe, "transcription failed", err)
	}
	o.logger.Info().Str("run", run.ID).Msg("transcription received")

	outputPath, err := o.store.SaveTranscript(ctx, videoPath, text)
	if err != nil {
		return result, o.fail(result, domain.StagePersist, "failed to save transcript", err)
	}

	result.OutputPath = outputPath
	result.Success = true
	result.CompletedAt = time.Now().UTC()
	o.logger.Info().Str("run", run.ID).Str("output", outputPath).Msg("transcript saved")

	return result, nil
}

// fail records and logs a stage failure on the result.
func (o *Orchestrator) fail(result *domain.RunResult, stage, message string, err error) error {
	stageErr := &domain.StageError{Stage: stage, Message: message, Err: err}
	result.ErrorMessage = stageErr.Error()
	result.CompletedAt = time.Now().UTC()
	o.logger.Error().Str("run", result.Run.ID).Str("stage", stage).Err(err).Msg(message)
	return stageErr
}
