package translator

import (
	"emulated-hue/internal/domain/model"
)

const ServiceSetTemperature = "set_temperature"

type ClimateStrategy struct{}

func (s *ClimateStrategy) Capabilities(features int) model.Capability {
	if features&model.ClimateSupportTargetTemperature != 0 {
		return model.CapTargetTemperature
	}
	return 0
}

func (s *ClimateStrategy) ToHue(entity *model.Entity, state *model.HueState) {
	temp := entity.FloatOr(model.AttrTemperature, 0)
	state.Brightness = model.Int(TemperatureToBrightness(temp))
}

func (s *ClimateStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {
	reinterpretPercent(cmd)
}

// ToHA never turns a climate device on or off; only the target
// temperature can be set.
func (s *ClimateStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {
	plan.Service = ""

	if caps.Has(model.CapTargetTemperature) && cmd.Brightness != nil {
		plan.Domain = model.DomainClimate
		plan.Service = ServiceSetTemperature
		plan.Data[model.AttrTemperature] = *cmd.Brightness
	}
}
