package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	DefaultConfigFilePath = "config.yaml"
)

var SupportedExts = []string{"yaml", "yml", "json", "dotenv", "env"}

// Validator is implemented by configurations that can check their own consistency.
type Validator interface {
	Validate() error
}

// Loader merges defaults, an optional config file and the environment into T.
type Loader[T any] struct {
	defaults       func() T
	envPrefix      string
	configFilePath string
	configFileExt  string
	viper          *viper.Viper
}

func NewLoader[T any](defaults func() T, envPrefix string) *Loader[T] {
	return &Loader[T]{
		defaults:       defaults,
		envPrefix:      envPrefix,
		configFilePath: DefaultConfigFilePath,
		configFileExt:  "yaml",
		viper:          viper.New(),
	}
}

// SetConfigFilePath points the loader at a config file. The extension selects the format.
func (l *Loader[T]) SetConfigFilePath(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(SupportedExts, ext) {
		return fmt.Errorf("unsupported config file extension: %s", ext)
	}

	l.configFilePath = path
	l.configFileExt = ext
	return nil
}

// Load loads the configuration from the environment and the config file.
// NOTE: The priority of the values is as follows:
// 1. Environment variables
// 2. Config file (supported types: "yaml", "yml", "json", "env", "dotenv")
// 3. Default values
//
// NOTE: The config file is optional when the default path is used.
// NOTE: Nested keys are joined with underscores in ENV variable names,
// e.g. the key gateways.probe_timeout is read from <ENVPREFIX>_GATEWAYS_PROBE_TIMEOUT.
// List values are read from ENV as comma separated strings.
//
// When T implements Validator, the loaded configuration is validated before it is returned.
func (l *Loader[T]) Load() (T, error) {
	cfg := l.defaults()
	if err := l.setViperDefaults(cfg); err != nil {
		return cfg, err
	}

	l.viper.SetEnvPrefix(l.envPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.viper.AutomaticEnv()

	if err := l.loadFromFile(); err != nil {
		return cfg, err
	}

	if err := l.viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error while unmarshalling config from viper: %w", err)
	}

	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config: %w", err)
		}
	}
	return cfg, nil
}

func (l *Loader[T]) setViperDefaults(cfg T) error {
	defaultsMap := make(map[string]any)
	if err := mapstructure.Decode(cfg, &defaultsMap); err != nil {
		return fmt.Errorf("error occurred while setting defaults: %w", err)
	}

	// Nested keys must be registered one by one, otherwise AutomaticEnv cannot see them.
	for k, v := range flatten(defaultsMap) {
		l.viper.SetDefault(k, v)
	}
	return nil
}

func (l *Loader[T]) loadFromFile() error {
	if l.configFilePath == DefaultConfigFilePath {
		if _, err := os.Stat(l.configFilePath); os.IsNotExist(err) {
			return nil
		}
	}

	l.viper.SetConfigFile(l.configFilePath)
	if l.configFileExt == "env" || l.configFileExt == "dotenv" {
		l.viper.SetConfigType("env")
	}
	if err := l.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}

	if l.configFileExt == "dotenv" || l.configFileExt == "env" {
		// .env keys use underscores instead of dots, alias them onto the nested keys.
		prefix := l.envPrefix
		if prefix != "" {
			prefix += "_"
		}
		for _, key := range l.viper.AllKeys() {
			alias := strings.ToLower(prefix + strings.ReplaceAll(key, ".", "_"))
			if alias != key {
				l.viper.RegisterAlias(alias, key)
			}
		}
	}
	return nil
}

func flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if nested, ok := v.(map[string]any); ok {
				walk(key, nested)
				continue
			}
			out[key] = v
		}
	}
	walk("", m)
	return out
}
