package translator

import (
	"emulated-hue/internal/domain/model"
)

type Factory struct {
	strategies map[string]Translator
	fallback   Translator
}

func NewFactory() *Factory {
	return &Factory{
		strategies: map[string]Translator{
			model.DomainLight:       &LightStrategy{},
			model.DomainCover:       &CoverStrategy{},
			model.DomainClimate:     &ClimateStrategy{},
			model.DomainFan:         &FanStrategy{},
			model.DomainMediaPlayer: &MediaPlayerStrategy{},
			model.DomainScript:      &ScriptStrategy{},
			model.DomainScene:       &SceneStrategy{},
		},
		fallback: &GenericStrategy{},
	}
}

// GetTranslator returns the strategy for a domain, or the generic on/off
// strategy for domains without a dedicated one.
func (f *Factory) GetTranslator(domain string) Translator {
	if t, ok := f.strategies[domain]; ok {
		return t
	}
	return f.fallback
}
