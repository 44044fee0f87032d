// Root command for the glovoadmin CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/internal/paths"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configBackend  string
	configDataDir  string
	configPageSize int
	adminCreds     adminCredentials
)

var rootCmd = &cobra.Command{
	Use:     "glovoadmin",
	Short:   "GlovoAdmin is a local admin panel for a delivery business",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configPageSize = cfg.GetInt(cfgKeyPageSize)
		adminCreds = adminCredentials{
			Email:    cfg.GetString(cfgKeyAdminEmail),
			Password: cfg.GetString(cfgKeyAdminPassword),
			Name:     cfg.GetString(cfgKeyAdminName),
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.glovoadmin-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(deliveryCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > GLOVOADMIN_DATA_DIR env >
// default $(CWD)/.glovoadmin-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > GLOVOADMIN_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
