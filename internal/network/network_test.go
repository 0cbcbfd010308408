package network

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

func scenarioB() model.StructuredInput {
	return model.StructuredInput{
		Actors: []model.NetworkActor{
			{Name: "county", Commitment: 0.9},
			{Name: "firm", Commitment: 0.7},
			{Name: "village", Commitment: 0.6},
		},
		Connections: []model.Connection{
			{From: "county", To: "firm"},
			{From: "firm", To: "village"},
		},
		SharedGoals:            []string{"income", "ecology"},
		CoordinationMechanisms: []string{"joint meeting", "task force"},
	}
}

func TestStructured_ScenarioB(t *testing.T) {
	got := Structured(scenarioB())

	assert.Equal(t, model.ModeStructured, got.Mode)
	assert.InDelta(t, (0.9+0.7+0.6)/3, got.Factors.CommitmentLevel, 1e-9)
	assert.InDelta(t, 2.0/6.0, got.Factors.ConnectionDensity, 1e-9)
	assert.InDelta(t, 0.6, got.Factors.GoalAlignment, 1e-9)
	assert.InDelta(t, 0.5, got.Factors.CoordinationEffectiveness, 1e-9)
	assert.NotEqual(t, model.LevelLow, got.StabilityLevel)
	assert.Equal(t, model.LevelMedium, got.StabilityLevel)

	// firm sits between the other two actors
	assert.InDelta(t, 1.0, got.Structure.Centralization, 1e-9)
	assert.Equal(t, TypeCentralized, got.Structure.NetworkType)
}

func TestStructured_UnnamedActors(t *testing.T) {
	in := model.StructuredInput{
		Actors:                 []model.NetworkActor{{Commitment: 0.9}, {Commitment: 0.7}, {Commitment: 0.6}},
		Connections:            []model.Connection{{}, {}},
		SharedGoals:            []string{"a", "b"},
		CoordinationMechanisms: []string{"x", "y"},
	}
	got := Structured(in)
	assert.NotEqual(t, model.LevelLow, got.StabilityLevel)
	assert.InDelta(t, 2.0/6.0, got.Factors.ConnectionDensity, 1e-9)
	assert.Equal(t, 0.0, got.Structure.Centralization)
}

func TestStructured_Clamping(t *testing.T) {
	in := model.StructuredInput{
		Actors:                 []model.NetworkActor{{Name: "a", Commitment: 4}, {Name: "b", Commitment: -1}},
		Connections:            []model.Connection{{From: "a", To: "b"}, {From: "b", To: "a"}, {From: "a", To: "b"}, {From: "a", To: "b"}, {From: "a", To: "b"}},
		SharedGoals:            []string{"1", "2", "3", "4", "5"},
		CoordinationMechanisms: []string{"1", "2", "3", "4", "5"},
	}
	got := Structured(in)

	for name, v := range map[string]float64{
		"commitment":     got.Factors.CommitmentLevel,
		"density":        got.Factors.ConnectionDensity,
		"goal":           got.Factors.GoalAlignment,
		"coordination":   got.Factors.CoordinationEffectiveness,
		"score":          got.StabilityScore,
		"connectivity":   got.Structure.Connectivity,
		"centralization": got.Structure.Centralization,
		"complexity":     got.Structure.Complexity,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
	assert.InDelta(t, 0.5, got.Factors.CommitmentLevel, 1e-9)
	assert.Equal(t, 1.0, got.Factors.ConnectionDensity)
}

func TestStructured_MissingCollections(t *testing.T) {
	got := Structured(model.StructuredInput{Actors: []model.NetworkActor{{Name: "solo", Commitment: 0.8}}})
	assert.Equal(t, 0.0, got.Factors.ConnectionDensity)
	assert.Equal(t, 0.0, got.Factors.GoalAlignment)
	assert.Equal(t, model.LevelLow, got.StabilityLevel)
	assert.Equal(t, TypeDistributed, got.Structure.NetworkType)
}

func TestTextual(t *testing.T) {
	calc := NewCalculator(rules.Default())
	doc := extract.NewDocument("政府与企业建立长期合作，达成共识，成立联席会议协调推进。")
	actors := []model.Actor{
		{Name: "政府", ClassifiedType: model.ActorGovernment},
		{Name: "企业", ClassifiedType: model.ActorEnterprise},
	}

	got := calc.Textual(doc, actors)
	assert.Equal(t, model.ModeTextual, got.Mode)
	assert.InDelta(t, 0.15, got.Factors.CommitmentLevel, 1e-9)
	assert.InDelta(t, 0.15, got.Factors.ConnectionDensity, 1e-9)
	assert.InDelta(t, 0.15, got.Factors.GoalAlignment, 1e-9)
	assert.InDelta(t, 0.30, got.Factors.CoordinationEffectiveness, 1e-9)
	assert.Equal(t, model.LevelLow, got.StabilityLevel)
	assert.InDelta(t, 0.5, got.Structure.Complexity, 1e-9)
	assert.Equal(t, TypeDistributed, got.Structure.NetworkType)
}

func TestTextual_EmptyText(t *testing.T) {
	got := NewCalculator(rules.Default()).Textual(extract.NewDocument(""), nil)
	if diff := cmp.Diff(Empty(), got); diff != "" {
		t.Errorf("empty text mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_SelectsModeByShape(t *testing.T) {
	calc := NewCalculator(rules.Default())
	doc := extract.NewDocument("")

	tests := []struct {
		name string
		in   model.Input
		want model.NetworkMode
	}{
		{"text", model.TextInput{Text: "合作"}, model.ModeTextual},
		{"structured", scenarioB(), model.ModeStructured},
		{"structured without network", model.StructuredInput{SharedGoals: []string{"a"}}, model.ModeTextual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Analyze(tt.in, doc, nil).Mode)
		})
	}
}

func TestModes_ShareOutputShape(t *testing.T) {
	calc := NewCalculator(rules.Default())
	structured := calc.Analyze(scenarioB(), extract.NewDocument(""), nil)
	textual := calc.Analyze(model.TextInput{}, extract.NewDocument("长期合作"), nil)

	if diff := cmp.Diff(jsonKeys(t, structured), jsonKeys(t, textual)); diff != "" {
		t.Errorf("field sets differ (-structured +textual):\n%s", diff)
	}
}

// jsonKeys returns every dotted key path of v's JSON encoding
func jsonKeys(t *testing.T, v any) []string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	var keys []string
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			keys = append(keys, prefix+k)
			if child, ok := v.(map[string]any); ok {
				walk(prefix+k+".", child)
			}
		}
	}
	walk("", m)
	sort.Strings(keys)
	return keys
}
