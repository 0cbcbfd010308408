package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/actornet/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	noFooter    bool
	insecureTLS bool
	noRobots    bool
	sequential  bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:     "analyze <source>",
	Aliases: []string{"scan"},
	Short:   "Analyze one narrative and generate a translation report",
	Long: `Analyze reads a narrative from a file, a URL or standard input ("-") and
runs every selected translation phase over it:
- Extract mechanisms, actors, resource flows and contradictions
- Measure network stability and black-box formation
- Score power effects and reconstruct the process timeline
- Recognize localized mobilization patterns (mobilization phase)

JSON sources are decoded by shape: {"text": ...} is a narrative, and an
object with actors/connections/shared_goals/coordination_mechanisms runs
the network and power calculators in structured mode.

Example:
  actornet analyze case.txt
  actornet analyze https://example.org/news/rural-revival --md report.md
  cat network.json | actornet analyze - --phases mobilization`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path (empty to skip)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification for URL sources")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt for URL sources")
	analyzeCmd.Flags().BoolVar(&sequential, "sequential", false, "run phases and stages one at a time")
}

// signalContext bounds a command by timeout and interrupt
func signalContext(d time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, d)
	return ctx, func() {
		cancel()
		stop()
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := signalContext(timeout)
	defer cancel()

	rs, err := loadRuleSet()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, rs, logger)
	if err != nil {
		return err
	}

	logger.Debug("analyzing",
		zap.String("source", source),
		zap.Duration("timeout", timeout),
		zap.Bool("cache", cfg.Cache.Enabled),
		zap.Bool("parallel", cfg.Concurrency.Parallel))

	report, err := p.ScanSource(ctx, source)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := p.RenderReport(report, outJSON, outMD, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
