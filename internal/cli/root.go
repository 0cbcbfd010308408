package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// Version is the actornet release, set at build time
var Version = "v0.1.0"

var (
	cfgFile   string
	verbose   bool
	rulesFile string
	phases    []string
	noCache   bool

	// Set by PersistentPreRunE
	cfg    *model.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "actornet",
	Short: "actornet - rule-based translation analysis of actor-network narratives",
	Long: `actornet reads a narrative of how an initiating actor builds and stabilizes
a network of allies and reports the four translation phases:
problematization, interessement, enrollment and mobilization.

Every finding is a literal cue match from a versioned rule set. The same
text and the same rules always give the same report, and every score
carries the formula that produced it.

actornet describes the network in the text. It does not judge it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file in the working directory is optional
		_ = godotenv.Load()

		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.Output.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and the built-in rule set version.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "actornet %s (rules %s)\n", Version, rules.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.actornet/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "rule set YAML replacing the built-in rules")
	rootCmd.PersistentFlags().StringSliceVar(&phases, "phases", nil, "phases to analyze (default: all four)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	rootCmd.AddCommand(versionCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// loadRuleSet returns the configured rule file, or nil for the built-in rules
func loadRuleSet() (*rules.RuleSet, error) {
	if cfg.Analysis.RulesFile == "" {
		return nil, nil
	}
	rs, err := rules.Load(cfg.Analysis.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	logger.Debug("loaded rule set", zap.String("path", cfg.Analysis.RulesFile), zap.String("version", rs.Version))
	return rs, nil
}
