package response

import (
	"fmt"

	"emulated-hue/internal/domain/model"
)

type Success struct {
	Success map[string]any `json:"success"`
}

func newSuccess(number, field string, value any) Success {
	key := fmt.Sprintf("/lights/%s/state/%s", number, field)
	return Success{Success: map[string]any{key: value}}
}

// Successes acknowledges every field of a parsed command: "on" first, then
// each numeric field that is set.
func Successes(number string, cmd model.HueState) []Success {
	out := []Success{newSuccess(number, "on", cmd.On)}
	for _, f := range []struct {
		name  string
		value *int
	}{
		{"bri", cmd.Brightness},
		{"hue", cmd.Hue},
		{"sat", cmd.Saturation},
		{"ct", cmd.ColorTemp},
	} {
		if f.value != nil {
			out = append(out, newSuccess(number, f.name, *f.value))
		}
	}
	return out
}
