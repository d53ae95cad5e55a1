package translator

import (
	"emulated-hue/internal/domain/model"
)

const ServiceVolumeSet = "volume_set"

type MediaPlayerStrategy struct{}

func (s *MediaPlayerStrategy) Capabilities(features int) model.Capability {
	if features&model.MediaPlayerSupportVolumeSet != 0 {
		return model.CapVolume
	}
	return 0
}

// ToHue reports full brightness for a playing device without a volume.
func (s *MediaPlayerStrategy) ToHue(entity *model.Entity, state *model.HueState) {
	level := entity.FloatOr(model.AttrVolumeLevel, 1.0)
	state.Brightness = model.Int(VolumeToBrightness(level))
}

func (s *MediaPlayerStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {
	reinterpretPercent(cmd)
}

// ToHA sets the volume in addition to powering the player on.
func (s *MediaPlayerStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {
	if !caps.Has(model.CapVolume) || cmd.Brightness == nil {
		return
	}
	plan.TurnOnFirst = true
	plan.Domain = model.DomainMediaPlayer
	plan.Service = ServiceVolumeSet
	plan.Data[model.AttrVolumeLevel] = float64(*cmd.Brightness) / 100.0
}
