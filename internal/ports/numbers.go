package ports

import "context"

// NumberStore persists the light number assigned to each entity id, so that
// clients keep addressing the same device across restarts.
type NumberStore interface {
	// Number returns the number of entityID, assigning the next free one
	// when the entity has none yet.
	Number(ctx context.Context, entityID string) (string, error)
	EntityID(ctx context.Context, number string) (string, bool, error)
	All(ctx context.Context) (map[string]string, error)
}
