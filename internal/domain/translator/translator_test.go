package translator

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emulated-hue/internal/domain/model"
)

type mapOverrides struct {
	mu      sync.Mutex
	entries map[string]model.HueState
}

func (m *mapOverrides) Get(entityID string) (model.HueState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.entries[entityID]
	return s, ok
}

func (m *mapOverrides) Put(entityID string, state model.HueState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entityID] = state
}

func newTestEngine() *Engine {
	return NewEngine(&mapOverrides{entries: map[string]model.HueState{}}, []string{model.DomainScript, model.DomainScene})
}

func entity(id, state string, features int, attrs map[string]any) *model.Entity {
	if attrs == nil {
		attrs = map[string]any{}
	}
	attrs[model.AttrSupportedFeatures] = float64(features)
	return &model.Entity{EntityID: id, State: state, Attributes: attrs}
}

func command(t *testing.T, e *Engine, ent *model.Entity, body string) (model.HueState, []model.ServiceCall) {
	t.Helper()
	cmd, calls, err := e.Command(ent, []byte(body))
	require.NoError(t, err)
	return cmd, calls
}

const lightColor = model.LightSupportBrightness | model.LightSupportColor

func TestLight_BrightnessCommand(t *testing.T) {
	e := newTestEngine()
	light := entity("light.kitchen", model.StateOff, lightColor, nil)

	cmd, calls := command(t, e, light, `{"on": true, "bri": 128}`)

	assert.True(t, cmd.On)
	assert.Equal(t, 128, *cmd.Brightness)
	require.Len(t, calls, 1)
	assert.Equal(t, "homeassistant.turn_on", calls[0].String())
	assert.Equal(t, map[string]any{
		model.AttrEntityID:   "light.kitchen",
		model.AttrBrightness: 128,
	}, calls[0].Data)
}

func TestLight_ZeroBrightnessTurnsOff(t *testing.T) {
	e := newTestEngine()
	light := entity("light.kitchen", model.StateOn, lightColor, nil)

	cmd, calls := command(t, e, light, `{"bri": 0}`)

	assert.False(t, cmd.On)
	require.Len(t, calls, 1)
	assert.Equal(t, "homeassistant.turn_off", calls[0].String())
	assert.NotContains(t, calls[0].Data, model.AttrBrightness)
}

func TestLight_BrightnessWithoutSupportIsDropped(t *testing.T) {
	e := newTestEngine()
	light := entity("light.plain", model.StateOff, 0, nil)

	cmd, calls := command(t, e, light, `{"bri": 100}`)

	assert.True(t, cmd.On)
	assert.Nil(t, cmd.Brightness)
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0].Data, model.AttrBrightness)
}

func TestLight_ColorRoundTrip(t *testing.T) {
	e := newTestEngine()
	light := entity("light.desk", model.StateOn, lightColor, map[string]any{
		model.AttrBrightness: float64(200),
		model.AttrHSColor:    []any{200.0, 60.0},
	})

	state := e.State(light)
	require.NotNil(t, state.Hue)
	require.NotNil(t, state.Saturation)

	_, calls := command(t, e, light, `{"on": true, "hue": `+strconv.Itoa(*state.Hue)+`, "sat": `+strconv.Itoa(*state.Saturation)+`}`)
	require.Len(t, calls, 1)
	hs, ok := calls[0].Data[model.AttrHSColor].([]int)
	require.True(t, ok)
	assert.InDelta(t, 200, hs[0], 1)
	assert.InDelta(t, 60, hs[1], 1)
}

func TestLight_ColorTemperature(t *testing.T) {
	e := newTestEngine()
	light := entity("light.ct", model.StateOn, model.LightSupportBrightness|model.LightSupportColorTemp, nil)

	_, calls := command(t, e, light, `{"on": true, "ct": 300}`)
	require.Len(t, calls, 1)
	assert.Equal(t, 300, calls[0].Data[model.AttrColorTemp])
}

func TestState_Clamping(t *testing.T) {
	e := newTestEngine()

	bright := entity("light.hot", model.StateOn, lightColor, map[string]any{
		model.AttrBrightness: float64(300),
		model.AttrColorTemp:  float64(600),
		model.AttrHSColor:    []any{400.0, 150.0},
	})
	state := e.State(bright)
	assert.Equal(t, BrightnessMax, *state.Brightness)
	assert.Equal(t, ColorTempMax, *state.ColorTemp)
	assert.Equal(t, HueMax, *state.Hue)
	assert.Equal(t, SaturationMax, *state.Saturation)

	dim := entity("light.dim", model.StateOn, lightColor, map[string]any{model.AttrBrightness: float64(0)})
	state = e.State(dim)
	assert.Equal(t, BrightnessMin, *state.Brightness)
	assert.Equal(t, ColorTempMin, *state.ColorTemp)

	off := entity("light.off", model.StateOff, lightColor, map[string]any{model.AttrBrightness: float64(180)})
	state = e.State(off)
	assert.False(t, state.On)
	assert.Equal(t, BrightnessMin, *state.Brightness)
	assert.Equal(t, 0, *state.Hue)
	assert.Equal(t, 0, *state.Saturation)
	assert.Equal(t, ColorTempMin, *state.ColorTemp)
}

func TestParseCommand_Clamping(t *testing.T) {
	ent := entity("light.x", model.StateOn, lightColor, nil)

	cmd, err := ParseCommand(ent, []byte(`{"bri": 999, "hue": -5, "sat": 300, "ct": 50}`))
	require.NoError(t, err)
	assert.Equal(t, BrightnessMax, *cmd.Brightness)
	assert.Equal(t, HueMin, *cmd.Hue)
	assert.Equal(t, SaturationMax, *cmd.Saturation)
	assert.Equal(t, ColorTempMin, *cmd.ColorTemp)
	assert.True(t, cmd.On)
}

func TestParseCommand_Errors(t *testing.T) {
	ent := entity("light.x", model.StateOn, lightColor, nil)

	tests := []struct {
		name string
		body string
		err  error
	}{
		{"not json", `{bad`, model.ErrInvalidJSON},
		{"null", `null`, model.ErrInvalidJSON},
		{"trailing data", `{"on": false} trailing`, model.ErrInvalidJSON},
		{"second object", `{"on": false}{"on": true}`, model.ErrInvalidJSON},
		{"non boolean on", `{"on": "yes"}`, model.ErrBadRequest},
		{"numeric on", `{"on": 1}`, model.ErrBadRequest},
		{"non numeric bri", `{"bri": "bright"}`, model.ErrBadRequest},
		{"object hue", `{"hue": {}}`, model.ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(ent, []byte(tt.body))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseCommand_Defaults(t *testing.T) {
	off := entity("switch.x", model.StateOff, 0, nil)
	cmd, err := ParseCommand(off, []byte(`{}`))
	require.NoError(t, err)
	assert.False(t, cmd.On)

	on := entity("switch.x", model.StateOn, 0, nil)
	cmd, err = ParseCommand(on, []byte(`{"bri": "42", "hue": 1000.7}`))
	require.NoError(t, err)
	assert.True(t, cmd.On)
	assert.Equal(t, 42, *cmd.Brightness)
	assert.Equal(t, 1000, *cmd.Hue)
	assert.Nil(t, cmd.Saturation)
}

func TestCommand_BadRequestIssuesNoCall(t *testing.T) {
	e := newTestEngine()
	_, calls, err := e.Command(entity("light.x", model.StateOn, lightColor, nil), []byte(`{"on": "yes"}`))
	assert.ErrorIs(t, err, model.ErrBadRequest)
	assert.Empty(t, calls)
}

func TestCover(t *testing.T) {
	e := newTestEngine()
	cover := entity("cover.garage", model.StateOn, model.CoverSupportSetPosition, map[string]any{
		model.AttrCurrentPosition: float64(50),
	})

	assert.Equal(t, 127, *e.State(cover).Brightness)

	cmd, calls := command(t, e, cover, `{"bri": 127}`)
	assert.True(t, cmd.On)
	assert.Equal(t, 50, *cmd.Brightness)
	require.Len(t, calls, 1)
	assert.Equal(t, "cover.set_cover_position", calls[0].String())
	assert.Equal(t, 50, calls[0].Data[model.AttrPosition])

	_, calls = command(t, e, cover, `{"bri": 50}`)
	assert.Equal(t, 20, calls[0].Data[model.AttrPosition])

	_, calls = command(t, e, cover, `{"on": false}`)
	assert.Equal(t, "cover.close_cover", calls[0].String())

	_, calls = command(t, e, cover, `{"on": true}`)
	assert.Equal(t, "cover.open_cover", calls[0].String())
}

func TestFanSpeedBuckets(t *testing.T) {
	tests := []struct {
		level int
		speed string
		ok    bool
	}{
		{0, SpeedOff, true},
		{1, SpeedLow, true},
		{33, SpeedLow, true},
		{34, SpeedMedium, true},
		{66, SpeedMedium, true},
		{67, SpeedHigh, true},
		{100, SpeedHigh, true},
		{101, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		speed, ok := PercentToFanSpeed(tt.level)
		assert.Equal(t, tt.ok, ok, "level %d", tt.level)
		assert.Equal(t, tt.speed, speed, "level %d", tt.level)
	}

	assert.Equal(t, 85, FanSpeedToBrightness(SpeedLow))
	assert.Equal(t, 170, FanSpeedToBrightness(SpeedMedium))
	assert.Equal(t, 255, FanSpeedToBrightness(SpeedHigh))
	assert.Equal(t, 0, FanSpeedToBrightness(SpeedOff))
}

func TestFan(t *testing.T) {
	e := newTestEngine()
	fan := entity("fan.ceiling", model.StateOn, model.FanSupportSetSpeed, map[string]any{model.AttrSpeed: SpeedMedium})

	assert.Equal(t, 170, *e.State(fan).Brightness)

	_, calls := command(t, e, fan, `{"bri": 254}`)
	require.Len(t, calls, 1)
	assert.Equal(t, "fan.turn_on", calls[0].String())
	assert.Equal(t, SpeedHigh, calls[0].Data[model.AttrSpeed])

	_, calls = command(t, e, fan, `{"bri": 60}`)
	assert.Equal(t, SpeedLow, calls[0].Data[model.AttrSpeed])

	_, calls = command(t, e, fan, `{"on": false}`)
	assert.Equal(t, "homeassistant.turn_off", calls[0].String())
}

func TestMediaPlayer_TurnsOnBeforeVolume(t *testing.T) {
	e := newTestEngine()
	player := entity("media_player.tv", model.StateOff, model.MediaPlayerSupportVolumeSet, nil)

	_, calls := command(t, e, player, `{"bri": 254}`)
	require.Len(t, calls, 2)
	assert.Equal(t, "homeassistant.turn_on", calls[0].String())
	assert.Equal(t, "media_player.volume_set", calls[1].String())
	assert.Equal(t, 1.0, calls[1].Data[model.AttrVolumeLevel])
	assert.Equal(t, "media_player.tv", calls[1].Data[model.AttrEntityID])
}

func TestMediaPlayer_State(t *testing.T) {
	e := newTestEngine()

	half := entity("media_player.tv", model.StateOn, model.MediaPlayerSupportVolumeSet, map[string]any{model.AttrVolumeLevel: 0.5})
	assert.Equal(t, 127, *e.State(half).Brightness)

	unknown := entity("media_player.radio", model.StateOn, model.MediaPlayerSupportVolumeSet, nil)
	assert.Equal(t, BrightnessMax, *e.State(unknown).Brightness)
}

func TestClimate(t *testing.T) {
	e := newTestEngine()
	climate := entity("climate.living", model.StateOn, model.ClimateSupportTargetTemperature, map[string]any{
		model.AttrTemperature: float64(20),
	})

	assert.Equal(t, 51, *e.State(climate).Brightness)

	_, calls := command(t, e, climate, `{"bri": 127}`)
	require.Len(t, calls, 1)
	assert.Equal(t, "climate.set_temperature", calls[0].String())
	assert.Equal(t, 50, calls[0].Data[model.AttrTemperature])

	_, calls = command(t, e, climate, `{"on": false}`)
	assert.Empty(t, calls)
}

func TestScript_Variables(t *testing.T) {
	e := newTestEngine()
	script := entity("script.wake", model.StateOff, 0, nil)

	_, calls := command(t, e, script, `{"on": true, "bri": 254}`)
	require.Len(t, calls, 1)
	assert.Equal(t, "homeassistant.turn_on", calls[0].String())
	assert.Equal(t, map[string]any{
		"requested_state": model.StateOn,
		"requested_level": 100,
	}, calls[0].Data["variables"])
}

// "off" for a script or scene still triggers it; only the cached state
// remembers the request.
func TestOffMapsToOnIsLossy(t *testing.T) {
	e := newTestEngine()
	script := entity("script.night", model.StateOn, 0, nil)

	cmd, calls := command(t, e, script, `{"on": false}`)
	assert.False(t, cmd.On)
	require.Len(t, calls, 1)
	assert.Equal(t, "homeassistant.turn_on", calls[0].String())
	assert.Equal(t, map[string]any{"requested_state": model.StateOff}, calls[0].Data["variables"])

	state := e.State(script)
	assert.False(t, state.On)
	assert.Equal(t, BrightnessMin, *state.Brightness)
}

func TestOffMapsToOn_CachedStateWins(t *testing.T) {
	e := newTestEngine()
	script := entity("script.dim", model.StateOff, 0, nil)

	command(t, e, script, `{"on": true, "bri": 127}`)

	state := e.State(script)
	assert.True(t, state.On)
	assert.Equal(t, 50, *state.Brightness)
	assert.Equal(t, 0, *state.Hue)
	assert.Equal(t, 0, *state.Saturation)
}

func TestScene(t *testing.T) {
	e := newTestEngine()
	scene := entity("scene.movie", model.StateOff, 0, nil)

	cmd, calls := command(t, e, scene, `{"on": false, "bri": 10}`)
	assert.True(t, cmd.On)
	assert.Nil(t, cmd.Brightness)
	require.Len(t, calls, 1)
	assert.Equal(t, "homeassistant.turn_on", calls[0].String())

	state := e.State(scene)
	assert.True(t, state.On)
	assert.Equal(t, BrightnessMax, *state.Brightness)
}

func TestGenericDomain(t *testing.T) {
	e := newTestEngine()
	sw := entity("switch.pump", model.StateOn, 0, nil)

	_, calls := command(t, e, sw, `{"on": false}`)
	require.Len(t, calls, 1)
	assert.Equal(t, "homeassistant.turn_off", calls[0].String())
	assert.Equal(t, map[string]any{model.AttrEntityID: "switch.pump"}, calls[0].Data)
}

func TestClassify(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		entity *model.Entity
		want   model.LightModel
	}{
		{entity("light.a", model.StateOn, model.LightSupportBrightness|model.LightSupportColor|model.LightSupportColorTemp, nil), model.ExtendedColorLight},
		{entity("light.b", model.StateOn, lightColor, nil), model.ColorLight},
		{entity("light.c", model.StateOn, model.LightSupportBrightness|model.LightSupportColorTemp, nil), model.ColorTemperatureLight},
		{entity("light.d", model.StateOn, model.LightSupportBrightness, nil), model.DimmableLight},
		{entity("light.e", model.StateOn, 0, nil), model.OnOffLight},
		{entity("light.f", model.StateOn, model.LightSupportColor, nil), model.OnOffLight},
		{entity("cover.a", model.StateOn, model.CoverSupportSetPosition, nil), model.DimmableLight},
		{entity("cover.b", model.StateOn, 0, nil), model.OnOffLight},
		{entity("fan.a", model.StateOn, model.FanSupportSetSpeed, nil), model.DimmableLight},
		{entity("media_player.a", model.StateOn, model.MediaPlayerSupportVolumeSet, nil), model.DimmableLight},
		{entity("climate.a", model.StateOn, model.ClimateSupportTargetTemperature, nil), model.DimmableLight},
		{entity("script.a", model.StateOn, 0, nil), model.DimmableLight},
		{entity("switch.a", model.StateOn, 1, nil), model.OnOffLight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want.ModelID, e.Model(tt.entity).ModelID, tt.entity.EntityID)
	}
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, 0, HassHueToHue(0))
	assert.Equal(t, HueMax, HassHueToHue(360))
	assert.Equal(t, SaturationMax, HassSatToSat(100))
	assert.Equal(t, 360, HueToHassHue(HueMax))
	assert.Equal(t, 100, SatToHassSat(SaturationMax))
	assert.Equal(t, 254, PercentToBrightness(100))
	assert.Equal(t, 50, BrightnessToPercent(127))
	assert.Equal(t, 254, VolumeToBrightness(1.5))
	assert.Equal(t, 5, Clamp(5, 1, 10))
	assert.Equal(t, 1, Clamp(-3, 1, 10))
	assert.Equal(t, 10, Clamp(30, 1, 10))
}
