package translator

import (
	"emulated-hue/internal/domain/model"
)

// GenericStrategy handles switches, input booleans, groups and any other
// domain through homeassistant.turn_on/turn_off.
type GenericStrategy struct{}

func (s *GenericStrategy) Capabilities(features int) model.Capability {
	return 0
}

func (s *GenericStrategy) ToHue(entity *model.Entity, state *model.HueState) {}

func (s *GenericStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {}

func (s *GenericStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {}
