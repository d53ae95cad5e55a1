package homeassistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/ports"
)

var _ ports.HomeAssistantPort = (*Client)(nil)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(time.Second, time.Minute, 100)
	c.Configure(srv.URL+"/", "token")
	return c
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(time.Second, time.Second, 10)
	assert.False(t, c.IsConfigured())

	_, err := c.GetStates(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_GetState(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/states/light.kitchen":
			w.Write([]byte(`{"entity_id":"light.kitchen","state":"on","attributes":{"brightness":128,"hs_color":[180,50]}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	assert.True(t, c.IsConfigured())

	entity, err := c.GetState(context.Background(), "light.kitchen")
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, "on", entity.State)
	bri, ok := entity.Float(model.AttrBrightness)
	assert.True(t, ok)
	assert.Equal(t, 128.0, bri)
	h, s, ok := entity.HSColor()
	assert.True(t, ok)
	assert.Equal(t, 180.0, h)
	assert.Equal(t, 50.0, s)

	missing, err := c.GetState(context.Background(), "light.missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClient_GetStatesCachesAndStripsAttributes(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"entity_id":"media_player.tv","state":"on","attributes":{"volume_level":0.5,"source_list":["a","b"],"entity_picture":"/x.png"}}]`))
	}))

	states, err := c.GetStates(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.NotContains(t, states[0].Attributes, "source_list")
	assert.NotContains(t, states[0].Attributes, "entity_picture")
	assert.Contains(t, states[0].Attributes, "volume_level")

	_, err = c.GetStates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_CallService(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`[]`))
			return
		}
		gotPath = r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`[]`))
	}))

	err := c.CallService(context.Background(), model.ServiceCall{
		Domain:  "cover",
		Service: "set_cover_position",
		Data:    map[string]any{"entity_id": "cover.garage", "position": 50},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/services/cover/set_cover_position", gotPath)
	assert.Equal(t, "cover.garage", gotBody["entity_id"])
	assert.Equal(t, 50.0, gotBody["position"])
}

func TestClient_CallServiceError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.CallService(context.Background(), model.ServiceCall{Domain: "light", Service: "turn_on"})
	assert.Error(t, err)
}

func TestClient_CallServiceInvalidatesCache(t *testing.T) {
	var gets atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		}
		w.Write([]byte(`[]`))
	}))

	ctx := context.Background()
	_, err := c.GetStates(ctx)
	require.NoError(t, err)
	require.NoError(t, c.CallService(ctx, model.ServiceCall{Domain: "light", Service: "turn_on"}))
	_, err = c.GetStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), gets.Load())
}
