package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"go duration", "timeout: 1500ms", 1500 * time.Millisecond},
		{"quoted duration", `timeout: "2s"`, 2 * time.Second},
		{"bare seconds", "timeout: 10", 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Timeout Duration `yaml:"timeout"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &out))
			assert.Equal(t, tt.want, out.Timeout.Duration())
		})
	}
}

func TestDurationUnmarshalYAML_Invalid(t *testing.T) {
	var out struct {
		Timeout Duration `yaml:"timeout"`
	}
	err := yaml.Unmarshal([]byte("\ntimeout: soon"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"soon"`)
	assert.Contains(t, err.Error(), "line 2")
}
