//go:build !gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/domain"
)

type NATSPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
	topic     string
}

type NATSPublisherConfig struct {
	URL   string
	Topic string
}

func NewNATSPublisher(cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:       false,
				AutoProvision:  true,
				ConnectOptions: nil,
				PublishOptions: nil,
				TrackMsgId:     false,
				AckAsync:       false,
				DurablePrefix:  "",
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
		topic:     cfg.Topic,
	}, nil
}

func NewNATSPublisherWithStream(ctx context.Context, cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	streamName := "EVENTS"

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Stream for published events",
		Subjects:    []string{cfg.Topic},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024, // 100MB
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.String("subject", cfg.Topic),
	)

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
		topic:     cfg.Topic,
	}, nil
}

// Publish sends the payload on the configured subject. NATS does not hand
// back a broker-assigned ID, so the client-generated message UUID is
// reported instead.
func (p *NATSPublisher) Publish(ctx context.Context, payload domain.Payload) (string, error) {
	msg := message.NewMessage(watermill.NewUUID(), payload.Bytes())
	for key, value := range payload.Attributes() {
		msg.Metadata.Set(key, value)
	}

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		slog.Error("failed to publish message",
			slog.String("subject", p.topic),
			slog.String("error", err.Error()),
		)

		return "", fmt.Errorf("failed to publish message: %w", err)
	}

	slog.Debug("published message",
		slog.String("subject", p.topic),
		slog.String("message_id", msg.UUID),
	)

	return msg.UUID, nil
}

func (p *NATSPublisher) PublishBatch(ctx context.Context, payloads []domain.Payload) ([]string, error) {
	ids := make([]string, 0, len(payloads))
	for i, payload := range payloads {
		id, err := p.Publish(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to publish message %d: %w", i, err)
		}

		ids = append(ids, id)
	}

	slog.Debug("published message batch",
		slog.String("subject", p.topic),
		slog.Int("count", len(ids)),
	)

	return ids, nil
}

func (p *NATSPublisher) Close() error {
	return p.publisher.Close()
}
