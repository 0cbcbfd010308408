package pipeline

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ppiankov/actornet/internal/cache"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/validate"
)

const mobilizationText = "县政府首先召开动员大会，部署资源整合工作。随后村民积极参与志愿服务，形成长效机制，建立制度化的合作网络。"

func TestAnalyze_Mobilization(t *testing.T) {
	a := NewAnalyzer()

	res := a.Analyze(context.Background(), model.PhaseMobilization, model.TextInput{Text: mobilizationText})

	assert.True(t, res.HasFindings)
	assert.True(t, res.HasMobilization)
	assert.NotEmpty(t, res.Mechanisms)
	assert.NotEmpty(t, res.BlackBoxes)
	assert.NotEmpty(t, res.Process.Phases)
	assert.Greater(t, res.Power.Effects.Total, 0.0)
	require.NotNil(t, res.Localization)
	assert.NotEmpty(t, res.Localization.Patterns)
	assert.Equal(t, model.LevelHigh, res.Compliance.Level)
	assert.InDelta(t, 1.0, res.Compliance.Score, 1e-9)
}

func TestAnalyze_InstitutionalSponsorship(t *testing.T) {
	res := NewAnalyzer().Analyze(context.Background(), model.PhaseInteressement,
		model.TextInput{Text: "政府通过财政补贴政策支持企业发展。"})

	var found bool
	for _, rec := range res.Mechanisms {
		if rec.Type == "institutional_sponsorship" {
			found = true
			assert.Contains(t, rec.TargetActors, "企业")
		}
	}
	assert.True(t, found, "expected an institutional_sponsorship record, got %+v", res.Mechanisms)
	assert.False(t, res.HasMobilization)
	assert.Nil(t, res.Localization, "localization belongs to mobilization only")
}

func TestAnalyze_StructuredNetwork(t *testing.T) {
	in := model.StructuredInput{
		Actors: []model.NetworkActor{
			{Name: "县政府", Commitment: 0.9},
			{Name: "合作社", Commitment: 0.7},
			{Name: "村民", Commitment: 0.6},
		},
		Connections: []model.Connection{
			{From: "县政府", To: "合作社"},
			{From: "县政府", To: "村民"},
		},
		SharedGoals:            []string{"增收", "环境整治"},
		CoordinationMechanisms: []string{"联席会议", "月度例会"},
	}

	res := NewAnalyzer().Analyze(context.Background(), model.PhaseMobilization, in)

	assert.Equal(t, model.ModeStructured, res.Network.Mode)
	assert.Equal(t, model.ModeStructured, res.Power.Mode)
	assert.NotEqual(t, model.LevelLow, res.Network.StabilityLevel)
	assert.False(t, res.HasFindings)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := NewAnalyzer()

	for _, phase := range model.Phases() {
		t.Run(string(phase), func(t *testing.T) {
			for _, in := range []model.Input{nil, model.TextInput{}, model.TextInput{Text: "  \n "}, model.StructuredInput{}} {
				res := a.Analyze(context.Background(), phase, in)
				assert.False(t, res.HasFindings)
				assert.Empty(t, res.Mechanisms)
				assert.Empty(t, res.Actors)
				if diff := cmp.Diff(validate.DefaultResult(phase), res); diff != "" {
					t.Errorf("empty input result mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestAnalyze_NoPhaseCues(t *testing.T) {
	res := NewAnalyzer().Analyze(context.Background(), model.PhaseProblematization,
		model.TextInput{Text: "今天天气很好，大家去公园散步。"})

	assert.Empty(t, res.Process.Phases)
	assert.Zero(t, res.Process.CompletionRate)
}

func TestAnalyze_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewAnalyzer().Analyze(ctx, model.PhaseMobilization, model.TextInput{Text: mobilizationText})
	assert.False(t, res.HasFindings)
}

func TestAnalyze_LongInputBounded(t *testing.T) {
	var b strings.Builder
	for len([]rune(b.String())) < 4000 {
		b.WriteString(mobilizationText)
		b.WriteString("\n")
	}

	start := time.Now()
	results := NewAnalyzer(WithParallel(true)).AnalyzeAll(context.Background(), model.TextInput{Text: b.String()}, model.Phases())
	elapsed := time.Since(start)

	assert.Len(t, results, 4)
	assert.Less(t, elapsed, 3*time.Second)
}

func TestAnalyzeAll_ParallelMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	in := model.TextInput{Text: mobilizationText + "政府通过财政补贴政策支持企业发展。各方协商后签署合作协议。"}
	phases := []model.Phase{model.PhaseMobilization, model.PhaseProblematization, model.PhaseEnrollment, model.PhaseInteressement}

	sequential := NewAnalyzer(WithParallel(false)).AnalyzeAll(context.Background(), in, phases)
	parallel := NewAnalyzer(WithParallel(true)).AnalyzeAll(context.Background(), in, phases)

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel results differ (-sequential +parallel):\n%s", diff)
	}

	got := make([]model.Phase, 0, len(parallel))
	for _, res := range parallel {
		got = append(got, res.Phase)
	}
	assert.Equal(t, model.Phases(), got, "results come back in canonical order")
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := NewAnalyzer(WithParallel(true))
	in := model.TextInput{Text: mobilizationText}

	first := a.Analyze(context.Background(), model.PhaseMobilization, in)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, a.Analyze(context.Background(), model.PhaseMobilization, in)); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}

func TestGuard_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	a := NewAnalyzer(WithLogger(zap.New(core)))

	ran := false
	assert.NotPanics(t, func() {
		a.guard("boom", func() {
			ran = true
			panic("stage failure")
		}, a.logger)
	})

	assert.True(t, ran)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "stage panicked", logs.All()[0].Message)
	assert.Equal(t, "boom", logs.All()[0].ContextMap()["stage"])
}

type countingCache struct {
	cache.Store
	sets atomic.Int32
}

func (c *countingCache) Set(key string, res model.AnalysisResult, ttl time.Duration) error {
	c.sets.Add(1)
	return c.Store.Set(key, res, ttl)
}

func TestAnalyze_Cache(t *testing.T) {
	store := &countingCache{Store: cache.NewMemoryCache(time.Minute, time.Minute)}
	a := NewAnalyzer(WithCache(store, time.Minute))
	in := model.TextInput{Text: mobilizationText}

	first := a.Analyze(context.Background(), model.PhaseMobilization, in)
	second := a.Analyze(context.Background(), model.PhaseMobilization, in)

	assert.Equal(t, int32(1), store.sets.Load(), "second analysis is served from cache")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached result differs (-first +second):\n%s", diff)
	}

	// Different phase, different key
	a.Analyze(context.Background(), model.PhaseEnrollment, in)
	assert.Equal(t, int32(2), store.sets.Load())
}

func TestAnalyze_LayeredCacheAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	in := model.TextInput{Text: mobilizationText}

	first := NewAnalyzer(WithCache(cache.NewLayeredCache(time.Minute, dir, time.Hour), time.Minute)).
		Analyze(context.Background(), model.PhaseMobilization, in)

	// A fresh process starts with an empty memory layer and decodes from disk
	store := &countingCache{Store: cache.NewLayeredCache(time.Minute, dir, time.Hour)}
	second := NewAnalyzer(WithCache(store, time.Minute)).Analyze(context.Background(), model.PhaseMobilization, in)

	assert.Zero(t, store.sets.Load(), "served from the disk layer")
	assert.Equal(t, first.Compliance.Score, second.Compliance.Score)
	assert.Equal(t, first.Compliance.Level, second.Compliance.Level)
	require.Len(t, second.Mechanisms, len(first.Mechanisms))
	for i, rec := range first.Mechanisms {
		assert.Equal(t, rec.Name, second.Mechanisms[i].Name)
		assert.Equal(t, rec.TargetActors, second.Mechanisms[i].TargetActors)
	}
}
