package appconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

const masked = "********"

// Masked returns the configuration as a map keyed like the config file, with secrets masked.
func (c Config) Masked() (map[string]any, error) {
	if c.AdminBearerToken != "" {
		c.AdminBearerToken = masked
	}
	if c.Storage.APIKey != "" {
		c.Storage.APIKey = masked
	}

	var m map[string]any
	if err := mapstructure.Decode(c, &m); err != nil {
		return nil, fmt.Errorf("failed to decode config to map: %w", err)
	}
	for _, section := range []string{"", "gateways"} {
		target := m
		if section != "" {
			target, _ = m[section].(map[string]any)
		}
		for k, v := range target {
			if d, ok := v.(fmt.Stringer); ok && strings.HasSuffix(k, "timeout") {
				target[k] = d.String()
			}
		}
	}
	return m, nil
}

// PrettyPrintAs writes the masked configuration to w in the specified format (JSON or YAML).
func PrettyPrintAs(w io.Writer, cfg Config, format string) error {
	m, err := cfg.Masked()
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(format) {
	case "json":
		data, err = json.MarshalIndent(m, "", "  ")
	case "yaml", "yml":
		data, err = yaml.Marshal(m)
	default:
		return fmt.Errorf("unsupported print format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config for printing: %w", err)
	}

	_, err = fmt.Fprintf(w, "Loaded Configuration:\n%s\n", data)
	return err
}
