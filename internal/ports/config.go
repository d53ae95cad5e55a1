package ports

import (
	"context"

	"emulated-hue/internal/domain/model"
)

type ConfigRepository interface {
	Get(ctx context.Context) (*model.Config, error)
}
