package service

import (
	"context"

	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/ports"
)

// Numbering maps Hue light ids to entity ids. Alexa needs small numeric
// ids; Google Home accepts the entity ids themselves.
type Numbering struct {
	bridgeType model.BridgeType
	store      ports.NumberStore
}

func NewNumbering(bridgeType model.BridgeType, store ports.NumberStore) *Numbering {
	return &Numbering{bridgeType: bridgeType, store: store}
}

func (n *Numbering) Number(ctx context.Context, entityID string) (string, error) {
	if n.bridgeType != model.BridgeTypeAlexa {
		return entityID, nil
	}
	return n.store.Number(ctx, entityID)
}

func (n *Numbering) EntityID(ctx context.Context, number string) (string, bool, error) {
	if n.bridgeType != model.BridgeTypeAlexa {
		return number, true, nil
	}
	return n.store.EntityID(ctx, number)
}
