// Config loading for the rolodex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir      = "data_dir"
	cfgKeyRemoteURL    = "remote_url"
	cfgKeyPageSize     = "page_size"
	cfgKeyPruneMissing = "prune_missing_on_sync"
	cfgKeyStrictUpdate = "strict_update"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Rolodex CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Base URL of the remote record source used by "rolodex sync"
# remote_url: http://localhost:9002

# Page size for remote sync requests
# page_size: 50

# Delete local records absent from the remote set after a sync.
# Default off: sync is additive and overwriting only.
# prune_missing_on_sync: false

# Make "rolodex update" fail when the id does not exist instead of
# silently doing nothing.
# strict_update: false
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyPageSize, types.DefaultPageSize)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if absent.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
