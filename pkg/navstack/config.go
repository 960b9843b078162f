package navstack

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk navigation configuration.
//
//	[log]
//	path = "/tmp/navstack.log"
//	level = "debug"
//
//	[navigation]
//	sync_on_mutation = true
//
//	[[routes]]
//	name = "home"
//	launch_mode = "MOVE_TO_TOP_SINGLETON"
//	animated = false
type Config struct {
	Log        LogConfig        `toml:"log"`
	Navigation NavigationConfig `toml:"navigation"`
	Routes     []Route          `toml:"routes"`
}

type LogConfig struct {
	Path  string `toml:"path"`  // Full path for the log file; empty logs to stderr only
	Level string `toml:"level"` // debug, info, warn or error
}

type NavigationConfig struct {
	SyncOnMutation   bool `toml:"sync_on_mutation"`
	DisableAnimation bool `toml:"disable_animation"`
}

// Route sets the options Navigation.Navigate uses for one destination name.
type Route struct {
	Name       string `toml:"name"`
	LaunchMode string `toml:"launch_mode"`
	Animated   *bool  `toml:"animated"` // nil means animated
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates TOML config data.
// Unknown keys are rejected so that typos do not silently change behavior.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if _, err := cfg.Options(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the config into Navigation options.
func (c Config) Options() (Options, error) {
	opts := Options{
		SyncOnMutation:   c.Navigation.SyncOnMutation,
		DisableAnimation: c.Navigation.DisableAnimation,
		Routes:           make(map[string]NavigationOptions, len(c.Routes)),
	}

	for i, r := range c.Routes {
		name := normalizeName(strings.TrimSpace(r.Name))
		if name == "" {
			return Options{}, fmt.Errorf("route %d: %w", i, ErrEmptyName)
		}
		mode, err := ParseLaunchMode(r.LaunchMode)
		if err != nil {
			return Options{}, fmt.Errorf("route %q: %w", name, err)
		}
		nav := NavigationOptions{LaunchMode: mode, Animated: true}
		if r.Animated != nil {
			nav.Animated = *r.Animated
		}
		opts.Routes[name] = nav
	}

	return opts, nil
}
