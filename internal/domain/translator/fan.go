package translator

import (
	"emulated-hue/internal/domain/model"
)

type FanStrategy struct{}

func (s *FanStrategy) Capabilities(features int) model.Capability {
	if features&model.FanSupportSetSpeed != 0 {
		return model.CapSpeed
	}
	return 0
}

func (s *FanStrategy) ToHue(entity *model.Entity, state *model.HueState) {
	speed, _ := entity.String(model.AttrSpeed)
	state.Brightness = model.Int(FanSpeedToBrightness(speed))
}

func (s *FanStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {
	reinterpretPercent(cmd)
}

func (s *FanStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {
	if !caps.Has(model.CapSpeed) || cmd.Brightness == nil {
		return
	}
	plan.Domain = model.DomainFan
	if speed, ok := PercentToFanSpeed(*cmd.Brightness); ok {
		plan.Data[model.AttrSpeed] = speed
	}
}
