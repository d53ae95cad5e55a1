package translator

import (
	"emulated-hue/internal/domain/model"
)

const dimmableCaps = model.CapBrightness | model.CapPosition | model.CapSpeed |
	model.CapVolume | model.CapTargetTemperature

// Classify picks the Hue light model an entity impersonates. The first
// matching rule wins.
func Classify(domain string, caps model.Capability) model.LightModel {
	switch {
	case caps.Has(model.CapBrightness | model.CapColor | model.CapColorTemp):
		return model.ExtendedColorLight
	case caps.Has(model.CapBrightness | model.CapColor):
		return model.ColorLight
	case caps.Has(model.CapBrightness | model.CapColorTemp):
		return model.ColorTemperatureLight
	case caps&dimmableCaps != 0, domain == model.DomainScript:
		return model.DimmableLight
	}
	return model.OnOffLight
}
