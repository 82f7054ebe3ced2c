//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/config"
	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/infra/pubsub"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	publisher, err := pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{
		URL:   cfg.PubSub.NatsURL,
		Topic: cfg.PubSub.Topic,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized",
		"url", cfg.PubSub.NatsURL,
		"subject", cfg.PubSub.Topic,
	)

	return publisher, nil
}
