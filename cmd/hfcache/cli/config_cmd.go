package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/meigma/hfcache/cmd/hfcache/cli/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hfcache configuration",
	Long: `View and modify hfcache configuration.

Without arguments, displays the current effective configuration.
Use subcommands to view the config path, initialize a config file,
or set configuration values.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(config.Path())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long: `Create a default configuration file at the XDG config path.

The file will be created at ~/.config/hfcache/config.yaml (or
$XDG_CONFIG_HOME/hfcache/config.yaml if set).`,
	RunE: runConfigInit,
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	fmt.Print(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	configPath := config.Path()

	// Check if already exists
	if _, statErr := os.Stat(configPath); statErr == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	// Create directory and write default config
	if mkdirErr := os.MkdirAll(config.Dir(), 0o750); mkdirErr != nil {
		return mkdirErr
	}

	defaultConfig := map[string]any{
		"cache": map[string]any{
			// dir omitted - the environment-based resolution is the default
		},
		"log": map[string]any{
			"level": "warn",
		},
	}
	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if writeErr := os.WriteFile(configPath, data, 0o600); writeErr != nil {
		return writeErr
	}

	fmt.Printf("Created config file: %s\n", configPath)
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Examples:
  hfcache config set cache.dir /data/hf/hub
  hfcache config set log.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		v := viper.New()
		v.SetConfigFile(config.Path())
		v.SetConfigType("yaml")

		// A missing file is fine; set creates it
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}

		v.Set(key, value)

		data, err := yaml.Marshal(v.AllSettings())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}

		if err := os.MkdirAll(config.Dir(), 0o750); err != nil {
			return err
		}
		if err := os.WriteFile(config.Path(), data, 0o600); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}
