package ports

import (
	"context"

	"emulated-hue/internal/domain/model"
)

type HomeAssistantPort interface {
	// GetState returns nil without error when the entity does not exist.
	GetState(ctx context.Context, entityID string) (*model.Entity, error)
	GetStates(ctx context.Context) ([]*model.Entity, error)
	CallService(ctx context.Context, call model.ServiceCall) error
	Configure(url, token string)
	IsConfigured() bool
}
