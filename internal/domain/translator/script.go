package translator

import (
	"emulated-hue/internal/domain/model"
)

type ScriptStrategy struct{}

func (s *ScriptStrategy) Capabilities(features int) model.Capability {
	return 0
}

func (s *ScriptStrategy) ToHue(entity *model.Entity, state *model.HueState) {}

func (s *ScriptStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {
	reinterpretPercent(cmd)
}

// ToHA passes the requested state to the script as variables.
func (s *ScriptStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {
	requested := model.StateOff
	if cmd.On {
		requested = model.StateOn
	}
	variables := map[string]any{"requested_state": requested}
	if cmd.Brightness != nil {
		variables["requested_level"] = *cmd.Brightness
	}
	plan.Data["variables"] = variables
}
