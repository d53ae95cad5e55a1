package translator

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"emulated-hue/internal/domain/model"
)

const (
	fieldOn  = "on"
	fieldBri = "bri"
	fieldHue = "hue"
	fieldSat = "sat"
	fieldCT  = "ct"
)

// ParseCommand validates a Hue state change body. A missing "on" defaults
// to the entity's reported state. Numeric fields are clamped; bri keeps 0 as
// an explicit "off" level.
func ParseCommand(entity *model.Entity, body []byte) (model.HueState, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return model.HueState{}, model.ErrInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.HueState{}, model.ErrInvalidJSON
	}

	cmd := model.HueState{On: !entity.IsOff()}
	if v, ok := raw[fieldOn]; ok {
		on, isBool := v.(bool)
		if !isBool {
			return model.HueState{}, model.ErrBadRequest
		}
		cmd.On = on
	}

	fields := []struct {
		key       string
		dst       **int
		low, high int
	}{
		{fieldBri, &cmd.Brightness, 0, BrightnessMax},
		{fieldHue, &cmd.Hue, HueMin, HueMax},
		{fieldSat, &cmd.Saturation, SaturationMin, SaturationMax},
		{fieldCT, &cmd.ColorTemp, ColorTempMin, ColorTempMax},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		n, ok := toInt(v)
		if !ok {
			return model.HueState{}, model.ErrBadRequest
		}
		*f.dst = model.Int(Clamp(n, f.low, f.high))
	}

	return cmd, nil
}

// toInt accepts JSON numbers, truncating fractions, and integer strings.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(clampFloat(float64(i))), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(clampFloat(f)), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func clampFloat(f float64) float64 {
	return math.Max(math.MinInt32, math.Min(f, math.MaxInt32))
}
