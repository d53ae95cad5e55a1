package translator

import (
	"emulated-hue/internal/domain/model"
)

type LightStrategy struct{}

func (s *LightStrategy) Capabilities(features int) model.Capability {
	var caps model.Capability
	if features&model.LightSupportBrightness != 0 {
		caps |= model.CapBrightness
	}
	if features&model.LightSupportColor != 0 {
		caps |= model.CapColor
	}
	if features&model.LightSupportColorTemp != 0 {
		caps |= model.CapColorTemp
	}
	return caps
}

// ToHue keeps the attributes read by the projector; lights already speak
// the Hue brightness scale.
func (s *LightStrategy) ToHue(entity *model.Entity, state *model.HueState) {}

func (s *LightStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {
	cmd.On = *cmd.Brightness > 0
	if !caps.Has(model.CapBrightness) {
		cmd.Brightness = nil
	}
}

func (s *LightStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {
	if !cmd.On {
		return
	}
	if caps.Has(model.CapBrightness) && cmd.Brightness != nil {
		plan.Data[model.AttrBrightness] = *cmd.Brightness
	}
	if caps.Has(model.CapColor) && (cmd.Hue != nil || cmd.Saturation != nil) {
		hue, sat := 0, 0
		if cmd.Hue != nil {
			hue = *cmd.Hue
		}
		if cmd.Saturation != nil {
			sat = *cmd.Saturation
		}
		plan.Data[model.AttrHSColor] = []int{HueToHassHue(hue), SatToHassSat(sat)}
	}
	if caps.Has(model.CapColorTemp) && cmd.ColorTemp != nil {
		plan.Data[model.AttrColorTemp] = *cmd.ColorTemp
	}
}
