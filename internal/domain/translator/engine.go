package translator

import (
	"github.com/samber/lo"

	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/ports"
)

// Engine projects entity state onto the Hue model and translates Hue
// commands back into service calls.
type Engine struct {
	factory     *Factory
	overrides   ports.OverrideStore
	offMapsToOn []string
}

func NewEngine(overrides ports.OverrideStore, offMapsToOnDomains []string) *Engine {
	return &Engine{
		factory:     NewFactory(),
		overrides:   overrides,
		offMapsToOn: offMapsToOnDomains,
	}
}

func (e *Engine) Capabilities(entity *model.Entity) model.Capability {
	return e.factory.GetTranslator(entity.Domain()).Capabilities(entity.SupportedFeatures())
}

// Model returns the Hue light model the entity impersonates.
func (e *Engine) Model(entity *model.Entity) model.LightModel {
	return Classify(entity.Domain(), e.Capabilities(entity))
}

// OffMapsToOn reports whether "off" commands for the domain are sent as
// "on". The backend cannot tell those entities apart once triggered, so the
// last command is cached and reported instead.
func (e *Engine) OffMapsToOn(domain string) bool {
	return lo.Contains(e.offMapsToOn, domain)
}
