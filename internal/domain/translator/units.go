package translator

import "math"

// Hue API ranges, see https://developers.meethue.com/develop/hue-api/lights-api/
const (
	BrightnessMin = 1
	BrightnessMax = 254
	HueMin        = 0
	HueMax        = 65535
	SaturationMin = 0
	SaturationMax = 254
	ColorTempMin  = 153
	ColorTempMax  = 500
)

const (
	SpeedOff    = "off"
	SpeedLow    = "low"
	SpeedMedium = "medium"
	SpeedHigh   = "high"
)

func Clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// HassHueToHue converts a 0-360 degree hue to the Hue 0-65535 scale.
func HassHueToHue(h float64) int {
	return int(h / 360 * HueMax)
}

// HassSatToSat converts a 0-100 saturation to the Hue 0-254 scale.
func HassSatToSat(s float64) int {
	return int(s / 100 * SaturationMax)
}

func HueToHassHue(h int) int {
	return int(float64(h) / HueMax * 360)
}

func SatToHassSat(s int) int {
	return int(float64(s) / SaturationMax * 100)
}

// PercentToBrightness scales a 0-100 value such as a cover position.
func PercentToBrightness(p float64) int {
	return int(math.Round(p * BrightnessMax / 100))
}

// TemperatureToBrightness scales a climate target temperature.
func TemperatureToBrightness(t float64) int {
	return int(math.Round(t * 255 / 100))
}

// VolumeToBrightness scales a 0.0-1.0 media volume level.
func VolumeToBrightness(level float64) int {
	return int(math.Round(math.Min(1.0, level) * BrightnessMax))
}

// BrightnessToPercent converts an inbound Hue brightness to 0-100.
func BrightnessToPercent(bri int) int {
	return int(math.Round(float64(bri) / BrightnessMax * 100))
}

func FanSpeedToBrightness(speed string) int {
	switch speed {
	case SpeedLow:
		return 85
	case SpeedMedium:
		return 170
	case SpeedHigh:
		return 255
	}
	return 0
}

// PercentToFanSpeed maps a 0-100 level to a fan speed. Boundary values
// belong to the lower bucket. Levels outside 0-100 have no speed.
func PercentToFanSpeed(level int) (string, bool) {
	l := float64(level)
	switch {
	case level == 0:
		return SpeedOff, true
	case l > 0 && l <= 33.3:
		return SpeedLow, true
	case l > 33.3 && l <= 66.6:
		return SpeedMedium, true
	case l > 66.6 && l <= 100:
		return SpeedHigh, true
	}
	return "", false
}
