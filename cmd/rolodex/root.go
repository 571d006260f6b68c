package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cliConfig holds the values loaded from config.yaml, set by
// PersistentPreRunE so every subcommand can use them.
var cliConfig struct {
	dataDir      string
	remoteURL    string
	pageSize     int
	prune        bool
	strictUpdate bool
}

var rootCmd = &cobra.Command{
	Use:     "rolodex",
	Short:   "Rolodex is a local-first customer record cache",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cliConfig.dataDir = cfg.GetString(cfgKeyDataDir)
		cliConfig.remoteURL = cfg.GetString(cfgKeyRemoteURL)
		cliConfig.pageSize = cfg.GetInt(cfgKeyPageSize)
		cliConfig.prune = cfg.GetBool(cfgKeyPruneMissing)
		cliConfig.strictUpdate = cfg.GetBool(cfgKeyStrictUpdate)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.rolodex-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(syncCmd)
}
