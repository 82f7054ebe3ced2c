//go:build gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	gpubsub "cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/domain"
)

type GCloudPublisher struct {
	client *gpubsub.Client
	topic  *gpubsub.Topic
}

type GCloudPublisherConfig struct {
	ProjectID       string
	Topic           string
	CredentialsFile string
	ClientOptions   []option.ClientOption
}

func NewGCloudPublisher(ctx context.Context, cfg GCloudPublisherConfig) (*GCloudPublisher, error) {
	opts := cfg.ClientOptions
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gpubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Pub/Sub client: %w", err)
	}

	topic, err := ensureTopic(ctx, client, cfg.Topic)
	if err != nil {
		_ = client.Close()

		return nil, err
	}

	return &GCloudPublisher{
		client: client,
		topic:  topic,
	}, nil
}

// ensureTopic resolves the topic handle, creating the topic when it does not
// exist yet. A concurrent creator winning the race is not an error.
func ensureTopic(ctx context.Context, client *gpubsub.Client, name string) (*gpubsub.Topic, error) {
	topic := client.Topic(name)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check topic %s: %w", name, err)
	}

	if exists {
		return topic, nil
	}

	slog.Warn("topic not found, creating it", slog.String("topic", name))

	created, err := client.CreateTopic(ctx, name)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return client.Topic(name), nil
		}

		return nil, fmt.Errorf("failed to create topic %s: %w", name, err)
	}

	return created, nil
}

func (p *GCloudPublisher) Publish(ctx context.Context, payload domain.Payload) (string, error) {
	res := p.topic.Publish(ctx, &gpubsub.Message{
		Data:       payload.Bytes(),
		Attributes: payload.Attributes(),
	})

	id, err := res.Get(ctx)
	if err != nil {
		slog.Error("failed to publish message",
			slog.String("topic", p.topic.ID()),
			slog.String("error", err.Error()),
		)

		return "", fmt.Errorf("failed to publish message: %w", err)
	}

	slog.Debug("published message",
		slog.String("topic", p.topic.ID()),
		slog.String("message_id", id),
	)

	return id, nil
}

func (p *GCloudPublisher) PublishBatch(ctx context.Context, payloads []domain.Payload) ([]string, error) {
	results := make([]*gpubsub.PublishResult, 0, len(payloads))
	for _, payload := range payloads {
		results = append(results, p.topic.Publish(ctx, &gpubsub.Message{
			Data:       payload.Bytes(),
			Attributes: payload.Attributes(),
		}))
	}

	ids := make([]string, 0, len(results))
	for i, res := range results {
		id, err := res.Get(ctx)
		if err != nil {
			slog.Error("failed to publish batch message",
				slog.String("topic", p.topic.ID()),
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)

			return nil, fmt.Errorf("failed to publish message %d: %w", i, err)
		}

		ids = append(ids, id)
	}

	slog.Debug("published message batch",
		slog.String("topic", p.topic.ID()),
		slog.Int("count", len(ids)),
	)

	return ids, nil
}

func (p *GCloudPublisher) Close() error {
	p.topic.Stop()

	return p.client.Close()
}
