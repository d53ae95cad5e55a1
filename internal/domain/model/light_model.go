package model

// Capability is the set of Hue-relevant features an entity supports,
// independent of how its domain encodes them in supported_features.
type Capability uint8

const (
	CapBrightness Capability = 1 << iota
	CapColor
	CapColorTemp
	CapPosition
	CapSpeed
	CapVolume
	CapTargetTemperature
)

func (c Capability) Has(flag Capability) bool {
	return c&flag == flag
}

// Home Assistant supported_features bits, per domain.
const (
	LightSupportBrightness = 1
	LightSupportColorTemp  = 2
	LightSupportColor      = 16

	CoverSupportSetPosition = 4

	FanSupportSetSpeed = 1

	MediaPlayerSupportVolumeSet = 4

	ClimateSupportTargetTemperature = 1
)

// StateField is a numeric Hue state attribute a light model publishes.
type StateField uint8

const (
	FieldBrightness StateField = 1 << iota
	FieldHue
	FieldSaturation
	FieldColorTemp
)

// LightModel is one of the fixed Hue device impersonations.
type LightModel struct {
	Type     string
	ModelID  string
	DeviceID string // ZigBee device id
	Fields   StateField
}

func (m LightModel) Publishes(f StateField) bool {
	return m.Fields&f == f
}

var (
	ExtendedColorLight = LightModel{
		Type:     "Extended color light",
		ModelID:  "HASS231",
		DeviceID: "0x0210",
		Fields:   FieldBrightness | FieldHue | FieldSaturation | FieldColorTemp,
	}
	ColorLight = LightModel{
		Type:     "Color light",
		ModelID:  "HASS213",
		DeviceID: "0x0200",
		Fields:   FieldBrightness | FieldHue | FieldSaturation,
	}
	ColorTemperatureLight = LightModel{
		Type:     "Color temperature light",
		ModelID:  "HASS312",
		DeviceID: "0x0220",
		Fields:   FieldBrightness | FieldColorTemp,
	}
	DimmableLight = LightModel{
		Type:     "Dimmable light",
		ModelID:  "HASS123",
		DeviceID: "0x0100",
		Fields:   FieldBrightness,
	}
	OnOffLight = LightModel{
		Type:     "On/off light",
		ModelID:  "HASS321",
		DeviceID: "0x0000",
	}
)
