// Config loading for the glovoadmin CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend       = "backend"
	cfgKeyDataDir       = "data_dir"
	cfgKeyPageSize      = "page_size"
	cfgKeyAdminEmail    = "admin_email"
	cfgKeyAdminPassword = "admin_password"
	cfgKeyAdminName     = "admin_name"

	// Defaults applied when config.yaml omits a key.
	defaultBackend       = "json"
	defaultPageSize      = 10
	defaultAdminEmail    = "admin@glovoadmin.ma"
	defaultAdminPassword = "admin123"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# GlovoAdmin CLI configuration

# Backend selection: json or sqlite
backend: json

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Default list page size
page_size: 10

# Admin credential checked by the login command
admin_email: admin@glovoadmin.ma
admin_password: admin123
admin_name: Administrateur
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyPageSize, defaultPageSize)
	v.SetDefault(cfgKeyAdminEmail, defaultAdminEmail)
	v.SetDefault(cfgKeyAdminPassword, defaultAdminPassword)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml falls back to the defaults.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
