package model

// HueState is the five-field Hue light record. It is used for parsed
// commands, for cached overrides and for projected state. A nil field means
// "not set".
type HueState struct {
	On         bool `json:"on"`
	Brightness *int `json:"bri,omitempty"`
	Hue        *int `json:"hue,omitempty"`
	Saturation *int `json:"sat,omitempty"`
	ColorTemp  *int `json:"ct,omitempty"`
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// ServiceCall is a single Home Assistant service invocation.
type ServiceCall struct {
	Domain  string         `json:"domain"`
	Service string         `json:"service"`
	Data    map[string]any `json:"data"`
}

func (c ServiceCall) String() string {
	return c.Domain + "." + c.Service
}
