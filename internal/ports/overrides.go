package ports

import "emulated-hue/internal/domain/model"

// OverrideStore keeps the last command sent to entities whose "off" maps
// to "on". Put replaces the whole record.
type OverrideStore interface {
	Get(entityID string) (model.HueState, bool)
	Put(entityID string, state model.HueState)
}
