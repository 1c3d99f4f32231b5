package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Provider provides configuration paths.
type Provider struct {
	homeDir func() (string, error)
}

// NewProvider creates a new configuration provider resolving paths under the
// current user's home directory.
func NewProvider() *Provider {
	return NewProviderWithHome(os.UserHomeDir)
}

// NewProviderWithHome creates a provider with a custom home directory lookup.
func NewProviderWithHome(homeDir func() (string, error)) *Provider {
	return &Provider{
		homeDir: homeDir,
	}
}

// GetConfigDir returns the directory holding the fshelp configuration.
func (p *Provider) GetConfigDir() (string, error) {
	homeDir, err := p.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "fshelp"), nil
}

// GetConfigPath returns the path to the fshelp configuration file.
func (p *Provider) GetConfigPath() (string, error) {
	dir, err := p.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
