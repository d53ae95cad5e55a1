package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"emulated-hue/internal/domain/model"
)

var ErrNotConfigured = errors.New("Home Assistant not configured")

// Attributes dropped from cached states; none of them feed a light state.
var strippedAttributes = []string{
	"entity_picture",
	"entity_picture_local",
	"source_list",
	"sound_mode_list",
}

// Client talks to the Home Assistant REST API.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	cacheTTL   time.Duration
	mu         sync.RWMutex

	cacheStates []*model.Entity
	cacheTime   time.Time
}

func NewClient(timeout, cacheTTL time.Duration, rateLimitRPS float64) *Client {
	burst := int(rateLimitRPS)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rateLimitRPS), burst),
		cacheTTL:   cacheTTL,
	}
}

func (c *Client) Configure(url, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.url = strings.TrimSuffix(url, "/")
	c.token = token
	c.cacheStates = nil
	c.cacheTime = time.Time{}
}

func (c *Client) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url != "" && c.token != ""
}

// GetState fetches one entity. A missing entity is reported as nil without error.
func (c *Client) GetState(ctx context.Context, entityID string) (*model.Entity, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/states/"+url.PathEscape(entityID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HA API error: %d", resp.StatusCode)
	}

	var entity model.Entity
	if err := json.NewDecoder(resp.Body).Decode(&entity); err != nil {
		return nil, fmt.Errorf("decoding state of %s: %w", entityID, err)
	}
	return &entity, nil
}

// GetStates lists all entities. Results are cached for the configured TTL.
func (c *Client) GetStates(ctx context.Context) ([]*model.Entity, error) {
	c.mu.RLock()
	if c.cacheStates != nil && time.Since(c.cacheTime) < c.cacheTTL {
		res := c.cacheStates
		c.mu.RUnlock()
		return res, nil
	}
	c.mu.RUnlock()

	resp, err := c.do(ctx, http.MethodGet, "/api/states", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HA API error: %d", resp.StatusCode)
	}

	var states []*model.Entity
	if err := json.NewDecoder(resp.Body).Decode(&states); err != nil {
		return nil, fmt.Errorf("decoding states: %w", err)
	}

	for _, s := range states {
		for _, attr := range strippedAttributes {
			delete(s.Attributes, attr)
		}
	}

	c.mu.Lock()
	c.cacheStates = states
	c.cacheTime = time.Now()
	c.mu.Unlock()

	log.Debug().Int("count", len(states)).Msg("Refreshed Home Assistant states")
	return states, nil
}

// CallService invokes a service and invalidates the state cache.
func (c *Client) CallService(ctx context.Context, call model.ServiceCall) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	data := call.Data
	if data == nil {
		data = map[string]any{}
	}
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", call, err)
	}

	path := fmt.Sprintf("/api/services/%s/%s", url.PathEscape(call.Domain), url.PathEscape(call.Service))
	resp, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HA API error: %d", resp.StatusCode)
	}

	c.mu.Lock()
	c.cacheStates = nil
	c.mu.Unlock()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	c.mu.RLock()
	base := c.url
	token := c.token
	c.mu.RUnlock()

	if base == "" || token == "" {
		return nil, ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
