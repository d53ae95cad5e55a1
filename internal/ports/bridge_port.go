package ports

import (
	"context"

	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/domain/response"
)

type BridgePort interface {
	GetLights(ctx context.Context) (map[string]*response.Light, error)
	GetLight(ctx context.Context, number string) (*response.Light, error)
	SetLightState(ctx context.Context, number string, body []byte) ([]response.Success, error)

	GetConfig(ctx context.Context) (*model.Config, error)
}
