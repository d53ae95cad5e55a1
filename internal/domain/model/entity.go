package model

import "strings"

const (
	StateOn          = "on"
	StateOff         = "off"
	StateUnavailable = "unavailable"
)

const (
	DomainLight       = "light"
	DomainCover       = "cover"
	DomainFan         = "fan"
	DomainClimate     = "climate"
	DomainMediaPlayer = "media_player"
	DomainScript      = "script"
	DomainScene       = "scene"

	// DomainHomeAssistant is the generic domain whose turn_on/turn_off
	// services accept any entity.
	DomainHomeAssistant = "homeassistant"
)

const (
	AttrSupportedFeatures = "supported_features"
	AttrFriendlyName      = "friendly_name"
	AttrBrightness        = "brightness"
	AttrHSColor           = "hs_color"
	AttrColorTemp         = "color_temp"
	AttrTemperature       = "temperature"
	AttrCurrentPosition   = "current_position"
	AttrPosition          = "position"
	AttrVolumeLevel       = "volume_level"
	AttrSpeed             = "speed"
	AttrEntityID          = "entity_id"

	AttrEmulatedHue       = "emulated_hue"
	AttrEmulatedHueHidden = "emulated_hue_hidden"
	AttrEmulatedHueName   = "emulated_hue_name"
)

// Entity is a read-only view of a Home Assistant state object.
type Entity struct {
	EntityID   string         `json:"entity_id"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

// Domain returns the part of the entity id before the first dot.
func (e *Entity) Domain() string {
	domain, _, _ := strings.Cut(e.EntityID, ".")
	return domain
}

func (e *Entity) IsOff() bool {
	return e.State == StateOff
}

func (e *Entity) Reachable() bool {
	return e.State != StateUnavailable
}

func (e *Entity) SupportedFeatures() int {
	v, _ := e.Float(AttrSupportedFeatures)
	return int(v)
}

// Float reads a numeric attribute. JSON decoding yields float64, but
// attributes built in code may carry plain ints.
func (e *Entity) Float(name string) (float64, bool) {
	switch v := e.Attributes[name].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// FloatOr reads a numeric attribute, falling back to def when it is missing.
func (e *Entity) FloatOr(name string, def float64) float64 {
	if v, ok := e.Float(name); ok {
		return v
	}
	return def
}

func (e *Entity) String(name string) (string, bool) {
	s, ok := e.Attributes[name].(string)
	return s, ok
}

func (e *Entity) Bool(name string) (value bool, ok bool) {
	value, ok = e.Attributes[name].(bool)
	return value, ok
}

// HSColor returns the hs_color attribute as (hue 0-360, saturation 0-100).
func (e *Entity) HSColor() (float64, float64, bool) {
	var pair []float64
	switch v := e.Attributes[AttrHSColor].(type) {
	case []float64:
		pair = v
	case []any:
		for _, item := range v {
			f, ok := item.(float64)
			if !ok {
				return 0, 0, false
			}
			pair = append(pair, f)
		}
	}
	if len(pair) != 2 {
		return 0, 0, false
	}
	return pair[0], pair[1], true
}
