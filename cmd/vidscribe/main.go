package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"vidscribe/internal/adapters/ffmpeg"
	"vidscribe/internal/adapters/gemini"
	"vidscribe/internal/adapters/localstorage"
	"vidscribe/internal/config"
	"vidscribe/internal/service"
	"vidscribe/internal/ui"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, environment variables might be set manually
		logger.Debug().Msg("no .env file found")
	}

	baseDir := flag.String("base-dir", ".", "Base directory for the output/ folder and the intermediate audio file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: vidscribe [-base-dir <path>] <video-path>")
		fmt.Println("\nExample:")
		fmt.Println("  vidscribe lecture.mp4")
		os.Exit(1)
	}
	videoPath := flag.Arg(0)

	if _, err := os.Stat(videoPath); err != nil {
		fmt.Printf("Error: the file '%s' does not exist.\n", videoPath)
		fmt.Println("Please provide a valid path to a video file.")
		os.Exit(1)
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		fmt.Printf("Error: %v.\n", err)
		var missing *config.MissingKeyError
		if errors.As(err, &missing) {
			fmt.Println(missing.Remediation())
		}
		os.Exit(1)
	}

	// Initialize adapters
	extractor := ffmpeg.NewExtractor()
	transcriber := gemini.NewClient(creds.APIKey)
	store := localstorage.NewTranscriptStore(*baseDir)
	spinner := ui.NewSpinner("Transcribing audio: ")

	orchestrator := service.NewOrchestrator(extractor, transcriber, store, spinner, logger)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Warn().Msg("received interrupt signal, cancelling")
		cancel()
	}()

	result, err := orchestrator.Run(ctx, videoPath)
	if err != nil {
		fmt.Printf("An error occurred during transcription: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	fmt.Println("\n=== Run Summary ===")
	fmt.Printf("Run ID:       %s\n", result.Run.ID)
	fmt.Printf("Input:        %s\n", result.Run.VideoPath)
	fmt.Printf("Transcript:   %s\n", result.OutputPath)
	fmt.Printf("Completed At: %s\n", result.CompletedAt.Format(time.RFC3339))
}
