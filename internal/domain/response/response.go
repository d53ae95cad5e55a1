// Package response builds the Hue bridge JSON payloads.
package response

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"emulated-hue/internal/domain/model"
)

const (
	ManufacturerName   = "Home Assistant"
	SwVersion          = "123"
	ModeHomeAutomation = "homeautomation"

	colorModeHS = "hs"
	colorModeCT = "ct"
	effectNone  = "none"
)

type State struct {
	On        bool   `json:"on"`
	Bri       *int   `json:"bri,omitempty"`
	Hue       *int   `json:"hue,omitempty"`
	Sat       *int   `json:"sat,omitempty"`
	CT        *int   `json:"ct,omitempty"`
	Effect    string `json:"effect,omitempty"`
	ColorMode string `json:"colormode,omitempty"`
	Reachable bool   `json:"reachable"`
	Mode      string `json:"mode"`
}

type Light struct {
	State            State  `json:"state"`
	Name             string `json:"name"`
	UniqueID         string `json:"uniqueid"`
	ManufacturerName string `json:"manufacturername"`
	SwVersion        string `json:"swversion"`
	Type             string `json:"type"`
	ModelID          string `json:"modelid"`
}

// NewLight renders a projected state as the light model lm. Only the fields
// the model publishes are included.
func NewLight(entity *model.Entity, name string, state model.HueState, lm model.LightModel) *Light {
	s := State{
		On:        state.On,
		Reachable: entity.Reachable(),
		Mode:      ModeHomeAutomation,
	}
	if lm.Publishes(model.FieldBrightness) {
		s.Bri = state.Brightness
	}

	switch lm.ModelID {
	case model.ExtendedColorLight.ModelID:
		s.Hue, s.Sat, s.CT = state.Hue, state.Saturation, state.ColorTemp
		s.Effect = effectNone
		if value(state.Hue) > 0 || value(state.Saturation) > 0 {
			s.ColorMode = colorModeHS
		} else {
			s.ColorMode = colorModeCT
		}
	case model.ColorLight.ModelID:
		s.Hue, s.Sat = state.Hue, state.Saturation
		s.Effect = effectNone
		s.ColorMode = colorModeHS
	case model.ColorTemperatureLight.ModelID:
		s.CT = state.ColorTemp
		s.ColorMode = colorModeCT
	}

	return &Light{
		State:            s,
		Name:             name,
		UniqueID:         UniqueID(entity.EntityID),
		ManufacturerName: ManufacturerName,
		SwVersion:        SwVersion,
		Type:             lm.Type,
		ModelID:          lm.ModelID,
	}
}

// UniqueID derives a stable pseudo MAC address from the MD5 digest of the
// entity id: "00:" followed by seven colon separated bytes and a hyphenated
// eighth. Clients pair on this value, so the layout must never change.
func UniqueID(entityID string) string {
	sum := md5.Sum([]byte(entityID))
	h := hex.EncodeToString(sum[:])
	return fmt.Sprintf("00:%s:%s:%s:%s:%s:%s:%s-%s",
		h[0:2], h[2:4], h[4:6], h[6:8], h[8:10], h[10:12], h[12:14], h[14:16])
}

func value(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
