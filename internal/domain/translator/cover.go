package translator

import (
	"emulated-hue/internal/domain/model"
)

const (
	ServiceOpenCover        = "open_cover"
	ServiceCloseCover       = "close_cover"
	ServiceSetCoverPosition = "set_cover_position"
)

type CoverStrategy struct{}

func (s *CoverStrategy) Capabilities(features int) model.Capability {
	if features&model.CoverSupportSetPosition != 0 {
		return model.CapPosition
	}
	return 0
}

func (s *CoverStrategy) ToHue(entity *model.Entity, state *model.HueState) {
	pos := entity.FloatOr(model.AttrCurrentPosition, 0)
	state.Brightness = model.Int(PercentToBrightness(pos))
}

func (s *CoverStrategy) Reinterpret(cmd *model.HueState, caps model.Capability) {
	reinterpretPercent(cmd)
}

func (s *CoverStrategy) ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan) {
	plan.Domain = model.DomainCover
	if plan.Service == ServiceTurnOn {
		plan.Service = ServiceOpenCover
	} else {
		plan.Service = ServiceCloseCover
	}

	if caps.Has(model.CapPosition) && cmd.Brightness != nil {
		plan.Service = ServiceSetCoverPosition
		plan.Data[model.AttrPosition] = *cmd.Brightness
	}
}
