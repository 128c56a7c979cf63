package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Export writes cfg to filename in the format selected by its extension.
func Export(cfg any, filename, envPrefix string) error {
	switch ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext {
	case "yaml", "yml":
		return ToYAMLFile(cfg, filename)
	case "json":
		return ToJSONFile(cfg, filename)
	case "env", "dotenv":
		return ToEnvFile(cfg, filename, envPrefix)
	default:
		return fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// ToYAMLFile exports the given config struct into a YAML file.
func ToYAMLFile(cfg any, filename string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map to yaml: %w", err)
	}
	return write(filename, data)
}

// ToJSONFile exports the given config struct into a JSON file.
func ToJSONFile(cfg any, filename string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal map to json: %w", err)
	}
	return write(filename, data)
}

// ToEnvFile exports the given config struct as KEY="value" lines, one per leaf field.
// Lists are written comma separated so that the loader can read them back.
func ToEnvFile(cfg any, filename, envPrefix string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(m))
	for k, v := range flatten(m) {
		key := strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		if envPrefix != "" {
			key = strings.ToUpper(envPrefix) + "_" + key
		}
		lines = append(lines, fmt.Sprintf(`%s="%s"`, key, envValue(v)))
	}
	sort.Strings(lines)

	return write(filename, []byte(strings.Join(lines, "\n")+"\n"))
}

func toMap(cfg any) (map[string]any, error) {
	var m map[string]any
	if err := mapstructure.Decode(cfg, &m); err != nil {
		return nil, fmt.Errorf("failed to decode config to map: %w", err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("config appears empty or unsupported, nothing to write")
	}
	return normalize(m), nil
}

// normalize renders durations in their string form so that exported files stay readable.
func normalize(m map[string]any) map[string]any {
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			m[k] = normalize(val)
		case time.Duration:
			m[k] = val.String()
		}
	}
	return m
}

func envValue(v any) string {
	if list, ok := v.([]string); ok {
		return strings.Join(list, ",")
	}
	return fmt.Sprintf("%v", v)
}

func write(filename string, data []byte) error {
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}
	return nil
}
