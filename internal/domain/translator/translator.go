package translator

import (
	"emulated-hue/internal/domain/model"
)

const (
	ServiceTurnOn  = "turn_on"
	ServiceTurnOff = "turn_off"
)

// Translator maps one Home Assistant domain onto the Hue light model.
type Translator interface {
	// Capabilities decodes the domain's supported_features bitmask.
	Capabilities(features int) model.Capability
	// ToHue adjusts the projected state of an entity that reports as on.
	ToHue(entity *model.Entity, state *model.HueState)
	// Reinterpret adjusts a parsed command whose request carried "bri".
	Reinterpret(cmd *model.HueState, caps model.Capability)
	// ToHA turns a parsed command into a service plan.
	ToHA(entity *model.Entity, cmd model.HueState, caps model.Capability, plan *Plan)
}

// Plan is the set of service calls a command resolves to. An empty Service
// means no primary call is issued.
type Plan struct {
	TurnOnFirst bool
	Domain      string
	Service     string
	Data        map[string]any
}

func newPlan(entityID string, on bool) *Plan {
	service := ServiceTurnOn
	if !on {
		service = ServiceTurnOff
	}
	return &Plan{
		Domain:  model.DomainHomeAssistant,
		Service: service,
		Data:    map[string]any{model.AttrEntityID: entityID},
	}
}

// Calls lists the calls in dispatch order: the separate turn on first.
func (p *Plan) Calls(entityID string) []model.ServiceCall {
	var calls []model.ServiceCall
	if p.TurnOnFirst {
		calls = append(calls, model.ServiceCall{
			Domain:  model.DomainHomeAssistant,
			Service: ServiceTurnOn,
			Data:    map[string]any{model.AttrEntityID: entityID},
		})
	}
	if p.Service != "" {
		calls = append(calls, model.ServiceCall{
			Domain:  p.Domain,
			Service: p.Service,
			Data:    p.Data,
		})
	}
	return calls
}

// reinterpretPercent treats "bri" as a level for domains controlled in percent.
func reinterpretPercent(cmd *model.HueState) {
	cmd.Brightness = model.Int(BrightnessToPercent(*cmd.Brightness))
	cmd.On = true
}
