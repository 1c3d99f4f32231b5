package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fshelp/internal/domain"
	"fshelp/pkg/fshelp/info"
)

// LogSettings configures the CLI logger.
type LogSettings struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Settings represents the fshelp configuration structure.
type Settings struct {
	Log         LogSettings             `mapstructure:"log" yaml:"log"`
	FS          domain.FileSystemConfig `mapstructure:"fs" yaml:"fs"`
	Directories info.Directories        `mapstructure:"directories" yaml:"directories"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		FS: domain.FileSystemConfig{
			Kind: "os",
		},
	}
}

// Marshal renders the settings as a YAML document.
func (s Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}
