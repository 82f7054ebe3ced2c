package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/domain"
	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/infra/pubsub"
)

type publishUseCaseImpl struct {
	publisher pubsub.Publisher
}

func NewPublishUseCase(publisher pubsub.Publisher) PublishUseCase {
	return &publishUseCaseImpl{
		publisher: publisher,
	}
}

func (uc *publishUseCaseImpl) PublishFromFile(ctx context.Context, input PublishFileInput) (PublishOutput, error) {
	slog.Debug("publishing payload from file",
		"path", input.Path,
	)

	raw, err := readEventFile(input.Path)
	if err != nil {
		return PublishOutput{}, err
	}

	payload, err := domain.ParsePayload(raw)
	if err != nil {
		return PublishOutput{}, NewValidationError("payload", err.Error())
	}

	id, err := uc.publisher.Publish(ctx, payload)
	if err != nil {
		slog.Error("failed to publish payload",
			"error", err,
			"path", input.Path,
		)

		return PublishOutput{}, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	slog.Info("payload published",
		"path", input.Path,
		"message_id", id,
	)

	return PublishOutput{MessageID: id}, nil
}

func (uc *publishUseCaseImpl) PublishBatchFromFile(ctx context.Context, input PublishFileInput) (PublishBatchOutput, error) {
	slog.Debug("publishing payload batch from file",
		"path", input.Path,
	)

	raw, err := readEventFile(input.Path)
	if err != nil {
		return PublishBatchOutput{}, err
	}

	payloads, err := domain.ParsePayloadBatch(raw)
	if err != nil {
		return PublishBatchOutput{}, NewValidationError("payload", err.Error())
	}

	ids, err := uc.publisher.PublishBatch(ctx, payloads)
	if err != nil {
		slog.Error("failed to publish payload batch",
			"error", err,
			"path", input.Path,
		)

		return PublishBatchOutput{}, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	slog.Info("payload batch published",
		"path", input.Path,
		"count", len(ids),
	)

	return FromMessageIDs(ids), nil
}

func (uc *publishUseCaseImpl) PublishEvent(ctx context.Context, input PublishEventInput) (PublishOutput, error) {
	slog.Debug("publishing structured event",
		"request_id", input.RequestID,
		"session_id", input.SessionID,
	)

	requestID, err := domain.RequestIDFromString(input.RequestID)
	if err != nil {
		return PublishOutput{}, NewValidationError("request_id", err.Error())
	}

	sessionID, err := domain.SessionIDFromString(input.SessionID)
	if err != nil {
		return PublishOutput{}, NewValidationError("session_id", err.Error())
	}

	event, err := domain.NewEvent(requestID, sessionID, input.Prompt)
	if err != nil {
		return PublishOutput{}, NewValidationError("prompt", err.Error())
	}

	if input.SpeakingRate != 0 {
		rate, err := domain.NewSpeakingRate(input.SpeakingRate)
		if err != nil {
			return PublishOutput{}, NewValidationError("speaking_rate", err.Error())
		}

		event.SetSpeakingRate(rate)
	}

	if input.Language != "" {
		language, err := domain.LanguageFromString(input.Language)
		if err != nil {
			return PublishOutput{}, NewValidationError("language", err.Error())
		}

		event.SetLanguage(language)
	}

	event.AttachImage(input.ImageBase64)
	event.SetTraceID(input.TraceID)
	event.SetConversationID(input.ConversationID)

	payload, err := event.Payload()
	if err != nil {
		return PublishOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	id, err := uc.publisher.Publish(ctx, payload)
	if err != nil {
		slog.Error("failed to publish event",
			"error", err,
			"request_id", input.RequestID,
		)

		return PublishOutput{}, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	slog.Info("event published",
		"request_id", input.RequestID,
		"message_id", id,
	)

	return PublishOutput{MessageID: id}, nil
}

func readEventFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrEventFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return raw, nil
}
