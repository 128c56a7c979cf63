package appconfig

import (
	"fmt"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/config"
)

// DefaultConfigFilePath is the default path to the configuration file.
const DefaultConfigFilePath = config.DefaultConfigFilePath

// NewLoader creates a new configuration loader with the given environment prefix.
// Loaded configurations are validated.
func NewLoader(envPrefix string) *config.Loader[Config] {
	return config.NewLoader(Defaults, envPrefix)
}

// Export writes the configuration to path in the format selected by its extension.
func Export(cfg *Config, path string) error {
	if err := config.Export(cfg, path, EnvPrefix); err != nil {
		return fmt.Errorf("failed to export config: %w", err)
	}
	return nil
}

// SupportedExts returns the list of supported configuration file extensions.
func SupportedExts() []string {
	return config.SupportedExts
}
