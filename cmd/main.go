package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/app"
	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/config"
)

var (
	fromFile       = flag.String("from-file", "", "path to a JSON file to publish as the message payload")
	batch          = flag.Bool("batch", false, "treat the file as a JSON array and publish one message per element")
	requestID      = flag.String("request-id", "", "request identifier for a structured event")
	sessionID      = flag.String("session-id", "", "session identifier for a structured event")
	prompt         = flag.String("prompt", "", "prompt text for a structured event")
	speakingRate   = flag.Float64("speaking-rate", 0, "speaking rate for a structured event (default 1.0)")
	language       = flag.String("language", "", "language code for a structured event (default \"en\")")
	imageBase64    = flag.String("image-base64", "", "base64 encoded image to attach to a structured event")
	traceID        = flag.String("trace-id", "", "trace identifier propagated as a message attribute")
	conversationID = flag.String("conversation-id", "", "conversation identifier propagated as a message attribute")
	projectID      = flag.String("project-id", "", "Google Cloud project ID (overrides GOOGLE_CLOUD_PROJECT)")
	topic          = flag.String("topic", "", "topic name (overrides PUBSUB_TOPIC)")
	credentials    = flag.String("credentials", "", "path to a service account key file (overrides GOOGLE_APPLICATION_CREDENTIALS)")
)

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.Log)

	applyFlagOverrides(cfg)

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	ctx := context.Background()

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize publisher", "error", err)
		return 1
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("failed to close publisher", "error", err)
		}
	}()

	useCase := app.NewPublishUseCase(publisher)

	switch {
	case *batch:
		if *fromFile == "" {
			slog.Error("--batch requires --from-file")
			return 2
		}

		output, err := useCase.PublishBatchFromFile(ctx, app.PublishFileInput{Path: *fromFile})
		if err != nil {
			return reportError(err)
		}

		fmt.Printf("published %d messages\n", output.Count)
		for _, id := range output.MessageIDs {
			fmt.Printf("  %s\n", id)
		}

	case *fromFile != "":
		output, err := useCase.PublishFromFile(ctx, app.PublishFileInput{Path: *fromFile})
		if err != nil {
			return reportError(err)
		}

		fmt.Printf("message published: %s\n", output.MessageID)

	default:
		if missing := missingEventFlags(*requestID, *sessionID, *prompt); len(missing) > 0 {
			fmt.Fprintf(os.Stderr, "missing required flags: %s\n", strings.Join(missing, ", "))
			flag.Usage()
			return 2
		}

		output, err := useCase.PublishEvent(ctx, app.PublishEventInput{
			RequestID:      *requestID,
			SessionID:      *sessionID,
			Prompt:         *prompt,
			SpeakingRate:   *speakingRate,
			Language:       *language,
			ImageBase64:    *imageBase64,
			TraceID:        *traceID,
			ConversationID: *conversationID,
		})
		if err != nil {
			return reportError(err)
		}

		fmt.Printf("message published: %s\n", output.MessageID)
	}

	return 0
}

// missingEventFlags names the required event-mode flags left unset. Event
// mode needs all three before any network work starts.
func missingEventFlags(requestID, sessionID, prompt string) []string {
	var missing []string

	if requestID == "" {
		missing = append(missing, "--request-id")
	}

	if sessionID == "" {
		missing = append(missing, "--session-id")
	}

	if prompt == "" {
		missing = append(missing, "--prompt")
	}

	return missing
}

func applyFlagOverrides(cfg *config.Config) {
	if *projectID != "" {
		cfg.PubSub.GCloudProjectID = *projectID
	}

	if *topic != "" {
		cfg.PubSub.Topic = *topic
	}

	if *credentials != "" {
		cfg.PubSub.CredentialsFile = *credentials
	}
}

func reportError(err error) int {
	switch {
	case app.IsValidationError(err):
		slog.Error("invalid input", "error", err)
	case errors.Is(err, app.ErrEventFileNotFound):
		slog.Error("event file not found", "error", err)
	case errors.Is(err, app.ErrPublishFailed):
		slog.Error("publish failed", "error", err)
	default:
		slog.Error("unexpected error", "error", err)
	}

	return 1
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level

	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
