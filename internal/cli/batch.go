package cli

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/actornet/internal/pipeline"
	"github.com/ppiankov/actornet/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze many sources from a file in parallel",
	Long: `Batch analyzes many narratives concurrently:
- Read sources from the input file (one per line, # comments, duplicates dropped)
- Analyze them with a pool of workers, throttling URL sources per host
- Write one JSON and one Markdown report per source

Example:
  actornet batch sources.txt
  actornet batch sources.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./actornet-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification for URL sources")
	batchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt for URL sources")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := signalContext(batchTimeout)
	defer cancel()

	rs, err := loadRuleSet()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, rs, logger)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	logger.Info("batch started",
		zap.String("input", file),
		zap.Int("workers", cfg.Concurrency.Workers),
		zap.String("output_dir", outputDir))

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	out := cmd.OutOrStdout()
	successCount := 0
	for i, result := range results {
		if result.Error != nil {
			logger.Warn("source failed", zap.String("source", result.Ref), zap.Error(result.Error))
			_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", result.Ref, result.Error)
			continue
		}

		base := filepath.Join(outputDir, reportName(i, result.Report.Subject))
		if err := p.RenderReport(result.Report, base+".json", base+".md", nil); err != nil {
			logger.Warn("render failed", zap.String("source", result.Ref), zap.Error(err))
			_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", result.Ref, err)
			continue
		}

		successCount++
		_, _ = fmt.Fprintf(out, "OK   %s -> %s.json\n", result.Ref, base)
	}

	_, _ = fmt.Fprintf(out, "\n%d sources, %d succeeded, %d failed. Reports in %s\n",
		len(results), successCount, len(results)-successCount, outputDir)
	return nil
}

// reportName builds a unique, filesystem-safe report name for the i-th source
func reportName(i int, subject string) string {
	return fmt.Sprintf("%03d-%s", i+1, sanitizeFilename(subject))
}

// sanitizeFilename keeps letters, digits, dots and dashes; runs of anything
// else collapse to a single dash
func sanitizeFilename(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	name := strings.Trim(b.String(), "-.")
	if runes := []rune(name); len(runes) > 80 {
		name = strings.TrimRight(string(runes[:80]), "-.")
	}
	if name == "" {
		return "report"
	}
	return name
}
