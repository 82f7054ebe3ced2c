package app

import (
	"context"
)

type PublishUseCase interface {
	PublishFromFile(ctx context.Context, input PublishFileInput) (PublishOutput, error)
	PublishBatchFromFile(ctx context.Context, input PublishFileInput) (PublishBatchOutput, error)
	PublishEvent(ctx context.Context, input PublishEventInput) (PublishOutput, error)
}
