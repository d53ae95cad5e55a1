package translator

import (
	"emulated-hue/internal/domain/model"
)

// Command parses a Hue state change for entity and returns the parsed
// command together with the service calls to dispatch, in order.
func (e *Engine) Command(entity *model.Entity, body []byte) (model.HueState, []model.ServiceCall, error) {
	cmd, err := ParseCommand(entity, body)
	if err != nil {
		return model.HueState{}, nil, err
	}

	domain := entity.Domain()
	t := e.factory.GetTranslator(domain)
	caps := t.Capabilities(entity.SupportedFeatures())

	if cmd.Brightness != nil {
		t.Reinterpret(&cmd, caps)
	}

	plan := newPlan(entity.EntityID, cmd.On)
	t.ToHA(entity, cmd, caps, plan)

	if e.OffMapsToOn(domain) {
		// These entities cannot be turned off: "off" triggers them as
		// well, and the requested state is what later reads report.
		plan.Service = ServiceTurnOn
		e.overrides.Put(entity.EntityID, cmd)
	}

	return cmd, plan.Calls(entity.EntityID), nil
}
