package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppiankov/actornet/internal/cache"
	"github.com/ppiankov/actornet/internal/extract/adapters"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
	"github.com/ppiankov/actornet/internal/validate"
)

// Pipeline orchestrates loading, decoding, analysis and rendering of a source
type Pipeline struct {
	loader   *SourceLoader
	registry *adapters.Registry
	analyzer *Analyzer
	renderer *Renderer
	phases   []model.Phase
	logger   *zap.Logger
	now      func() time.Time
}

// NewPipeline creates a new pipeline with the given configuration. A nil
// rule set selects the built-in rules.
func NewPipeline(cfg *model.Config, rs *rules.RuleSet, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	phases, err := model.ParsePhases(cfg.Analysis.Phases)
	if err != nil {
		return nil, fmt.Errorf("analysis phases: %w", err)
	}

	analyzer := NewAnalyzer(
		WithRules(rs),
		WithLogger(logger),
		WithParallel(cfg.Concurrency.Parallel),
		WithCache(cache.New(cfg.Cache), cfg.Cache.MemoryTTL),
	)

	return &Pipeline{
		loader:   NewSourceLoader(cfg.HTTP),
		registry: adapters.NewRegistry(),
		analyzer: analyzer,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		phases:   phases,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Analyzer returns the underlying analyzer
func (p *Pipeline) Analyzer() *Analyzer {
	return p.analyzer
}

// ScanSource loads and analyzes one source. Only loading fails; undecodable
// content yields a report of default results.
func (p *Pipeline) ScanSource(ctx context.Context, ref string) (*model.Report, error) {
	src, err := p.loader.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	return p.Analyze(ctx, src), nil
}

// Analyze decodes a loaded source and runs every selected phase
func (p *Pipeline) Analyze(ctx context.Context, src *Source) *model.Report {
	report := &model.Report{
		RunID:        uuid.NewString(),
		Subject:      src.Subject,
		Source:       src.Location,
		GeneratedAt:  p.now().UTC(),
		RulesVersion: p.analyzer.Rules().Version,
		Principles:   model.DefaultPrinciples(),
	}

	in, err := Decode(p.registry, src)
	if err != nil {
		if !errors.Is(err, model.ErrMalformedInput) {
			err = fmt.Errorf("%w: %v", model.ErrMalformedInput, err)
		}
		p.logger.Warn("input discarded", zap.String("source", src.Location), zap.Error(err))

		report.InputMode = model.InputMode(nil)
		report.Results = make([]model.AnalysisResult, 0, len(p.phases))
		for _, phase := range p.phases {
			report.Results = append(report.Results, validate.DefaultResult(phase))
		}
		return report
	}

	report.InputMode = model.InputMode(in)
	report.Results = p.analyzer.AnalyzeAll(ctx, in, p.phases)

	p.logger.Debug("source analyzed",
		zap.String("source", src.Location),
		zap.String("input_mode", report.InputMode),
		zap.Int("phases", len(report.Results)))
	return report
}

// RenderReport renders the report to the requested outputs and writes the
// summary to w when it is non-nil
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, w io.Writer) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		p.logger.Debug("wrote JSON", zap.String("path", jsonPath))
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		p.logger.Debug("wrote Markdown", zap.String("path", mdPath))
	}

	if w != nil {
		p.renderer.RenderSummary(w, report)
	}
	return nil
}
