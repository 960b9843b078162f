package navstack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[log]
path = "/tmp/navstack.log"
level = "debug"

[navigation]
sync_on_mutation = true

[[routes]]
name = "home"
launch_mode = "move_to_top_singleton"
animated = false

[[routes]]
name = "detail"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/navstack.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Navigation.SyncOnMutation)
	assert.False(t, cfg.Navigation.DisableAnimation)
	require.Len(t, cfg.Routes, 2)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.True(t, opts.SyncOnMutation)
	assert.Equal(t, map[string]NavigationOptions{
		"home":   {LaunchMode: LaunchModeMoveToTopSingleton, Animated: false},
		"detail": {LaunchMode: LaunchModeStandard, Animated: true},
	}, opts.Routes)
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Empty(t, opts.Routes)
	assert.False(t, opts.SyncOnMutation)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		target  error
		message string
	}{
		{
			name:    "unknown key",
			data:    "[log]\ncolour = true\n",
			message: "unknown keys: log.colour",
		},
		{
			name:   "bad launch mode",
			data:   "[[routes]]\nname = \"home\"\nlaunch_mode = \"sideways\"\n",
			target: ErrUnknownLaunchMode,
		},
		{
			name:    "empty route name",
			data:    "[[routes]]\nname = \"  \"\n",
			target:  ErrEmptyName,
			message: "route 0",
		},
		{
			name:    "bad toml",
			data:    "[log\n",
			message: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navstack.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Routes, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLaunchMode(t *testing.T) {
	for input, want := range map[string]LaunchMode{
		"":                      LaunchModeStandard,
		"STANDARD":              LaunchModeStandard,
		"pop_to_singleton":      LaunchModePopToSingleton,
		"New_Instance":          LaunchModeNewInstance,
		"MOVE_TO_TOP_SINGLETON": LaunchModeMoveToTopSingleton,
	} {
		got, err := ParseLaunchMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
		assert.NotEmpty(t, got.String())
	}

	_, err := ParseLaunchMode("nope")
	assert.ErrorIs(t, err, ErrUnknownLaunchMode)
}
