package pubsub

import (
	"context"
	"io"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/domain"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

// Publisher delivers payloads to a topic and reports the message ID the
// broker assigned to each delivery.
type Publisher interface {
	Publish(ctx context.Context, payload domain.Payload) (string, error)
	PublishBatch(ctx context.Context, payloads []domain.Payload) ([]string, error)
	io.Closer
}
