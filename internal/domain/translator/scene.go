package translator

import (
	"emulated-hue/internal/domain/model"
)

// SceneStrategy activates scenes; a scene has no level.
type SceneStrategy struct{}

func (s *SceneStrategy) Capabilities(features int) model.Capability {
	return 0
}

func (s *SceneStrategy) ToHue(entity *model.Entity, state *model.HueState) {}

func (s *SceneStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {
	cmd.Brightness = nil
	cmd.On = true
}

func (s *SceneStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {}
