package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/actornet/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. ACTORNET_HTTP_TIMEOUT
const EnvPrefix = "ACTORNET"

// Keys omitted from the marshaled defaults still need to be known to
// viper for environment overrides
var optionalKeys = []string{"http.http_proxy", "http.https_proxy", "http.no_proxy", "analysis.rules_file"}

// loadConfig merges defaults, the config file, ACTORNET_* variables and
// flags, lowest to highest priority
func loadConfig(cmd *cobra.Command) (*model.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshal defaults: %w", err)
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}
	for _, key := range optionalKeys {
		v.SetDefault(key, "")
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(model.HomeDir())
		v.SetConfigName("config")
	}
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := model.DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyFlags(cmd, config)
	return config, nil
}

// applyFlags overrides config values with flags the user actually set
func applyFlags(cmd *cobra.Command, config *model.Config) {
	if cmd == nil {
		return
	}
	flags := cmd.Flags()

	if flags.Changed("verbose") {
		config.Output.Verbose = verbose
	}
	if flags.Changed("no-cache") {
		config.Cache.Enabled = !noCache
	}
	if flags.Changed("rules") {
		config.Analysis.RulesFile = rulesFile
	}
	if flags.Changed("phases") {
		config.Analysis.Phases = phases
	}
	if flags.Changed("insecure") {
		config.HTTP.InsecureTLS = insecureTLS
	}
	if flags.Changed("no-robots") {
		config.HTTP.RespectRobots = !noRobots
	}
	if flags.Changed("no-footer") {
		config.Output.IncludeFooter = !noFooter
	}
	if flags.Changed("sequential") {
		config.Concurrency.Parallel = !sequential
	}
	if flags.Changed("concurrency") {
		config.Concurrency.Workers = concurrency
	}
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage actornet configuration",
	Long: `Manage actornet configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (ACTORNET_*, also read from ./.env)
3. Config file (~/.actornet/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after merging defaults, config file, environment and flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, "# Effective configuration")
		_, _ = fmt.Fprintf(out, "# Environment overrides use %s_<SECTION>_<KEY>, e.g. %s_HTTP_TIMEOUT=10s\n\n", EnvPrefix, EnvPrefix)
		_, _ = out.Write(data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.actornet/config.yaml with every available option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cfgFile
		if configPath == "" {
			configPath = filepath.Join(model.HomeDir(), "config.yaml")
		}

		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Created default configuration: %s\n", configPath)
		_, _ = fmt.Fprintf(out, "\nTo view the effective configuration:\n  actornet config show\n")
		return nil
	},
}

// writeDefaultConfig writes the defaults to path, refusing to overwrite
func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s\nUse 'actornet config show' to view it, or delete it first to recreate", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("# actornet configuration file\n")
	b.WriteString("#\n")
	b.WriteString("# Configuration hierarchy (highest to lowest priority):\n")
	b.WriteString("#   1. CLI flags\n")
	b.WriteString("#   2. Environment variables (ACTORNET_*)\n")
	b.WriteString("#   3. This config file\n")
	b.WriteString("#   4. Built-in defaults\n\n")
	b.Write(data)

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
