package model

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type BridgeType string

const (
	// BridgeTypeAlexa assigns sequential numeric light ids.
	BridgeTypeAlexa BridgeType = "alexa"
	// BridgeTypeGoogleHome uses entity ids as light ids.
	BridgeTypeGoogleHome BridgeType = "google_home"
)

type NumberBackend string

const (
	NumberBackendJSON   NumberBackend = "json"
	NumberBackendSQLite NumberBackend = "sqlite"
)

// EntityConfig holds per-entity overrides.
type EntityConfig struct {
	Name   string `yaml:"name,omitempty"`
	Hidden *bool  `yaml:"hidden,omitempty"`
}

type HomeAssistantConfig struct {
	URL           string   `yaml:"url"`
	Token         string   `yaml:"token"`
	Timeout       Duration `yaml:"timeout"`
	StateCacheTTL Duration `yaml:"state_cache_ttl"`
	RateLimitRPS  float64  `yaml:"rate_limit_rps"`
}

type IDsConfig struct {
	Backend NumberBackend `yaml:"backend"`
	Path    string        `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	JSON   bool   `yaml:"json"`
	Colors bool   `yaml:"colors"`
	File   string `yaml:"file"` // Rotated through lumberjack when set
}

type Config struct {
	HostIP            string `yaml:"host_ip"`
	ListenPort        int    `yaml:"listen_port"`
	AdvertiseIP       string `yaml:"advertise_ip"`
	AdvertisePort     int    `yaml:"advertise_port"`
	UPnPBindMulticast *bool  `yaml:"upnp_bind_multicast"`

	Type          BridgeType          `yaml:"type"`
	HomeAssistant HomeAssistantConfig `yaml:"home_assistant"`

	ExposeByDefault    *bool                    `yaml:"expose_by_default"`
	ExposedDomains     []string                 `yaml:"exposed_domains"`
	OffMapsToOnDomains []string                 `yaml:"off_maps_to_on_domains"`
	Entities           map[string]*EntityConfig `yaml:"entities"`

	IDs IDsConfig `yaml:"ids"`
	Log LogConfig `yaml:"log"`
}

// AdvertisedIP is the address clients are told to use.
func (c *Config) AdvertisedIP() string {
	if c.AdvertiseIP != "" {
		return c.AdvertiseIP
	}
	return c.HostIP
}

func (c *Config) AdvertisedPort() int {
	if c.AdvertisePort != 0 {
		return c.AdvertisePort
	}
	return c.ListenPort
}

// Duration is a wrapper around time.Duration for YAML unmarshalling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration. Bare integers are
// read as seconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: invalid duration: %w", value.Line, err)
	}
	if secs, err := strconv.Atoi(s); err == nil {
		*d = Duration(time.Duration(secs) * time.Second)
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", value.Line, s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
