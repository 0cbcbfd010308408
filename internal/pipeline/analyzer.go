package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/actornet/internal/cache"
	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/localize"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/network"
	"github.com/ppiankov/actornet/internal/power"
	"github.com/ppiankov/actornet/internal/process"
	"github.com/ppiankov/actornet/internal/rules"
	"github.com/ppiankov/actornet/internal/validate"
)

// Analyzer runs the translation pipeline for one phase at a time.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	rules       *rules.RuleSet
	records     *extract.RecordExtractor
	actors      *extract.ActorIdentifier
	network     *network.Calculator
	power       *power.Calculator
	tracker     *process.Tracker
	synthesizer *validate.Synthesizer

	cache    cache.Store
	cacheTTL time.Duration
	rulesKey string // Fingerprint of the rule set, part of every cache key
	parallel bool
	logger   *zap.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger for recovered stages and cache faults
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithCache caches synthesized results; a nil cache disables caching
func WithCache(c cache.Store, ttl time.Duration) Option {
	return func(a *Analyzer) {
		a.cache = c
		a.cacheTTL = ttl
	}
}

// WithParallel runs independent stages and phases concurrently
func WithParallel(parallel bool) Option {
	return func(a *Analyzer) {
		a.parallel = parallel
	}
}

// WithRules replaces the built-in rule set
func WithRules(rs *rules.RuleSet) Option {
	return func(a *Analyzer) {
		if rs != nil {
			a.rules = rs
		}
	}
}

// NewAnalyzer creates an analyzer over the built-in rules unless WithRules is given
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		rules:  rules.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.records = extract.NewRecordExtractor(a.rules)
	a.actors = extract.NewActorIdentifier(a.rules)
	a.network = network.NewCalculator(a.rules)
	a.power = power.NewCalculator(a.rules)
	a.tracker = process.NewTracker(a.rules)
	a.synthesizer = validate.NewSynthesizer()

	if a.cache != nil {
		a.rulesKey = a.rules.Version
		if data, err := a.rules.Marshal(); err == nil {
			a.rulesKey = cache.Key(a.rules.Version, string(data))
		}
	}
	return a
}

// Rules returns the rule set in use
func (a *Analyzer) Rules() *rules.RuleSet {
	return a.rules
}

// Analyze runs every stage of one phase and synthesizes the result.
// It never fails: nil or empty input, a canceled context and incomplete
// drafts all yield the default result.
func (a *Analyzer) Analyze(ctx context.Context, phase model.Phase, in model.Input) model.AnalysisResult {
	log := a.logger.With(zap.String("phase", string(phase)))

	if in == nil {
		log.Debug("no input")
		return validate.DefaultResult(phase)
	}
	if err := ctx.Err(); err != nil {
		log.Warn("analysis skipped", zap.Error(err))
		return validate.DefaultResult(phase)
	}

	doc := extract.NewDocument(in.Narrative())
	structured, isStructured := in.(model.StructuredInput)
	if doc.Empty() && !(isStructured && structured.HasNetwork()) {
		log.Debug("empty input")
		return validate.DefaultResult(phase)
	}

	key, cacheable := a.cacheKey(phase, in)
	if cacheable {
		if res, ok := a.cached(key, log); ok {
			return res
		}
	}

	draft := a.runStages(phase, in, doc, log)
	res, err := a.synthesizer.Synthesize(draft)
	if err != nil {
		log.Warn("draft discarded", zap.Error(err))
		return res
	}

	if cacheable {
		a.store(key, res, log)
	}
	return res
}

type stage struct {
	name string
	run  func()
}

// runStages fills a draft. Stages write disjoint fields, so they may run
// concurrently; a stage that panics leaves its field nil.
func (a *Analyzer) runStages(phase model.Phase, in model.Input, doc *extract.Document, log *zap.Logger) *validate.Draft {
	d := &validate.Draft{Phase: phase}

	stages := []stage{
		{"mechanisms", func() {
			records := extract.DedupeRecords(a.records.Extract(phase, doc))
			actors := extract.DedupeActors(a.actors.Identify(records))
			flows := a.actors.Flows(records)
			d.Mechanisms, d.Actors, d.ResourceFlows = records, actors, flows
		}},
		{"contradictions", func() {
			d.Contradictions = extract.DetectContradictions(a.rules, doc)
		}},
		{"network", func() {
			n := a.network.Analyze(in, doc, extract.DedupeActors(a.actors.Mentioned(doc)))
			d.Network = &n
		}},
		{"black_boxes", func() {
			d.BlackBoxes = power.DetectBlackBoxes(a.rules, doc)
		}},
		{"power", func() {
			p := a.power.Analyze(in, doc)
			d.Power = &p
		}},
		{"process", func() {
			t := a.tracker.Track(phase, doc)
			d.Process = &t
		}},
	}
	if phase == model.PhaseMobilization {
		stages = append(stages, stage{"localization", func() {
			d.Localization = localize.Analyze(a.rules, doc)
		}})
	}

	if !a.parallel {
		for _, s := range stages {
			a.guard(s.name, s.run, log)
		}
		return d
	}

	// Stages report failure through the draft, never through the group
	var g errgroup.Group
	for _, s := range stages {
		s := s
		g.Go(func() error {
			a.guard(s.name, s.run, log)
			return nil
		})
	}
	_ = g.Wait()
	return d
}

// guard recovers a panicking stage
func (a *Analyzer) guard(name string, run func(), log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("stage panicked", zap.String("stage", name), zap.Any("panic", r))
		}
	}()
	run()
}

// AnalyzeAll runs the given phases, concurrently in parallel mode, and
// returns the results in canonical phase order
func (a *Analyzer) AnalyzeAll(ctx context.Context, in model.Input, phases []model.Phase) []model.AnalysisResult {
	ordered := make([]model.Phase, 0, len(phases))
	for _, p := range model.Phases() {
		for _, want := range phases {
			if p == want {
				ordered = append(ordered, p)
				break
			}
		}
	}

	results := make([]model.AnalysisResult, len(ordered))
	if !a.parallel {
		for i, p := range ordered {
			results[i] = a.Analyze(ctx, p, in)
		}
		return results
	}

	var g errgroup.Group
	for i, p := range ordered {
		i, p := i, p
		g.Go(func() error {
			results[i] = a.Analyze(ctx, p, in)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (a *Analyzer) cacheKey(phase model.Phase, in model.Input) (string, bool) {
	if a.cache == nil {
		return "", false
	}
	data, err := json.Marshal(in)
	if err != nil {
		return "", false
	}
	return cache.Key(a.rulesKey, string(phase), model.InputMode(in), string(data)), true
}

func (a *Analyzer) cached(key string, log *zap.Logger) (model.AnalysisResult, bool) {
	res, ok := a.cache.Get(key)
	if ok {
		log.Debug("cache hit")
	}
	return res, ok
}

func (a *Analyzer) store(key string, res model.AnalysisResult, log *zap.Logger) {
	if err := a.cache.Set(key, res, a.cacheTTL); err != nil {
		log.Warn("cache write failed", zap.Error(fmt.Errorf("set %s: %w", key, err)))
	}
}
