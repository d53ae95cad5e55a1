package persistence

import (
	"context"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"emulated-hue/internal/domain/model"
)

const DefaultNumbersPath = "emulated_hue_ids.json"

var (
	DefaultExposedDomains     = []string{"switch", "light", "group", "input_boolean", "media_player", "fan"}
	DefaultOffMapsToOnDomains = []string{"script", "scene"}
)

type YAMLConfigRepository struct {
	filepath string
	mu       sync.RWMutex
}

func NewYAMLConfigRepository(filepath string) *YAMLConfigRepository {
	return &YAMLConfigRepository{filepath: filepath}
}

// Get loads the configuration file. A missing file yields the defaults.
func (r *YAMLConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cfg model.Config
	data, err := os.ReadFile(r.filepath)
	switch {
	case err == nil:
		expanded := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func (r *YAMLConfigRepository) Save(ctx context.Context, cfg *model.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(r.filepath, data, 0600)
}

func applyEnvOverrides(cfg *model.Config) {
	if v := os.Getenv("HASS_URL"); v != "" {
		cfg.HomeAssistant.URL = v
	}
	if v := os.Getenv("HASS_TOKEN"); v != "" {
		cfg.HomeAssistant.Token = v
	}
	if v := os.Getenv("LOCAL_IP"); v != "" {
		cfg.HostIP = v
	}
}

func applyDefaults(cfg *model.Config) {
	if cfg.ListenPort == 0 {
		cfg.ListenPort = 80
	}
	if cfg.UPnPBindMulticast == nil {
		cfg.UPnPBindMulticast = lo.ToPtr(true)
	}
	if cfg.Type == "" {
		cfg.Type = model.BridgeTypeGoogleHome
	}

	// Home Assistant defaults
	if cfg.HomeAssistant.Timeout == 0 {
		cfg.HomeAssistant.Timeout = model.Duration(10 * time.Second)
	}
	if cfg.HomeAssistant.StateCacheTTL == 0 {
		cfg.HomeAssistant.StateCacheTTL = model.Duration(2 * time.Second)
	}
	if cfg.HomeAssistant.RateLimitRPS == 0 {
		cfg.HomeAssistant.RateLimitRPS = 10
	}

	// Exposure defaults
	if cfg.ExposeByDefault == nil {
		cfg.ExposeByDefault = lo.ToPtr(true)
	}
	if cfg.ExposedDomains == nil {
		cfg.ExposedDomains = append([]string(nil), DefaultExposedDomains...)
	}
	if cfg.OffMapsToOnDomains == nil {
		cfg.OffMapsToOnDomains = append([]string(nil), DefaultOffMapsToOnDomains...)
	}
	if cfg.Entities == nil {
		cfg.Entities = make(map[string]*model.EntityConfig)
	}

	if cfg.IDs.Backend == "" {
		cfg.IDs.Backend = model.NumberBackendJSON
	}
	if cfg.IDs.Path == "" {
		cfg.IDs.Path = DefaultNumbersPath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}
func expandEnvVars(input string) string {
	re := regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

	return re.ReplaceAllStringFunc(input, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultVal := ""
		if len(parts) >= 3 {
			defaultVal = parts[2]
		}

		if val := os.Getenv(varName); val != "" {
			return val
		}
		return defaultVal
	})
}
