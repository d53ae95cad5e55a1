package translator

import (
	"emulated-hue/internal/domain/model"
)

// State returns the Hue state of an entity. A cached override, when present,
// wins over the reported state. Every set field is clamped to its Hue range.
func (e *Engine) State(entity *model.Entity) model.HueState {
	var state model.HueState
	if cached, ok := e.overrides.Get(entity.EntityID); ok {
		state = repairCached(cached)
	} else {
		state = e.project(entity)
	}
	return clampState(state)
}

func (e *Engine) project(entity *model.Entity) model.HueState {
	state := model.HueState{On: !entity.IsOff()}
	if !state.On {
		state.Brightness = model.Int(0)
		state.Hue = model.Int(0)
		state.Saturation = model.Int(0)
		state.ColorTemp = model.Int(0)
		return state
	}

	state.Brightness = model.Int(int(entity.FloatOr(model.AttrBrightness, 0)))
	if h, s, ok := entity.HSColor(); ok {
		state.Hue = model.Int(HassHueToHue(h))
		state.Saturation = model.Int(HassSatToSat(s))
	} else {
		state.Hue = model.Int(HueMin)
		state.Saturation = model.Int(SaturationMin)
	}
	state.ColorTemp = model.Int(int(entity.FloatOr(model.AttrColorTemp, 0)))

	e.factory.GetTranslator(entity.Domain()).ToHue(entity, &state)
	return state
}

// repairCached works on a copy; the cached record itself is never modified.
func repairCached(cached model.HueState) model.HueState {
	state := cached
	if state.Brightness == nil {
		if state.On {
			state.Brightness = model.Int(BrightnessMax)
		} else {
			state.Brightness = model.Int(0)
		}
	}
	if state.Hue == nil || state.Saturation == nil {
		state.Hue = model.Int(0)
		state.Saturation = model.Int(0)
	}
	// An off light has no color.
	if *state.Brightness == 0 {
		state.Hue = model.Int(0)
		state.Saturation = model.Int(0)
	}
	return state
}

func clampState(state model.HueState) model.HueState {
	state.Brightness = clampPtr(state.Brightness, BrightnessMin, BrightnessMax)
	state.Hue = clampPtr(state.Hue, HueMin, HueMax)
	state.Saturation = clampPtr(state.Saturation, SaturationMin, SaturationMax)
	state.ColorTemp = clampPtr(state.ColorTemp, ColorTempMin, ColorTempMax)
	return state
}

func clampPtr(v *int, low, high int) *int {
	if v == nil {
		return nil
	}
	return model.Int(Clamp(*v, low, high))
}
