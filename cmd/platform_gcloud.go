//go:build gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/config"
	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/infra/pubsub"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	publisher, err := pubsub.NewGCloudPublisher(ctx, pubsub.GCloudPublisherConfig{
		ProjectID:       cfg.PubSub.GCloudProjectID,
		Topic:           cfg.PubSub.Topic,
		CredentialsFile: cfg.PubSub.CredentialsFile,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub publisher initialized",
		"project_id", cfg.PubSub.GCloudProjectID,
		"topic", cfg.PubSub.Topic,
	)

	return publisher, nil
}
