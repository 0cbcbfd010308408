package power

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

const sampleText = "出台政策制度并加强宣传，推广技术标准，获得荣誉称号。"

func TestDetectBlackBoxes(t *testing.T) {
	boxes := DetectBlackBoxes(rules.Default(), extract.NewDocument(sampleText))
	require.Len(t, boxes, 2)

	assert.Equal(t, model.BlackBoxTechnical, boxes[0].Type)
	assert.Equal(t, "standardization", boxes[0].FormationMechanism)
	assert.Equal(t, []string{"技术标准"}, boxes[0].Indicators)
	assert.InDelta(t, 0.18, boxes[0].Stability, 1e-9)
	assert.InDelta(t, 0.12, boxes[0].Opacity, 1e-9)
	assert.InDelta(t, 0.15, boxes[0].Irreversibility, 1e-9)

	assert.Equal(t, model.BlackBoxInstitutional, boxes[1].Type)
	assert.Equal(t, "institutionalization", boxes[1].FormationMechanism)
}

func TestDetectBlackBoxes_ClampedAndEmpty(t *testing.T) {
	rs := rules.Default()

	boxes := DetectBlackBoxes(rs, extract.NewDocument("技术标准 标准化 平台 系统 技术规范 standard platform system protocol"))
	require.NotEmpty(t, boxes)
	for _, b := range boxes {
		assert.LessOrEqual(t, b.Stability, 1.0)
		assert.LessOrEqual(t, b.Opacity, 1.0)
		assert.LessOrEqual(t, b.Irreversibility, 1.0)
	}
	assert.Equal(t, 1.0, boxes[0].Stability)

	empty := DetectBlackBoxes(rs, extract.NewDocument(""))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTextual(t *testing.T) {
	got := NewCalculator(rules.Default()).Textual(extract.NewDocument(sampleText))

	assert.Equal(t, TierMedium, got.Effects.Institutional)
	assert.Equal(t, TierLow, got.Effects.Discursive)
	assert.Equal(t, TierMedium, got.Effects.Technical)
	assert.Equal(t, TierMedium, got.Effects.Symbolic)
	assert.InDelta(t, 2.2, got.Effects.Total, 1e-9, "total is a raw sum")
	assert.Equal(t, model.ModeTextual, got.Mode)
	assert.InDelta(t, 0.6/2.2, got.Distribution.PowerCentralization, 1e-9)
	assert.Equal(t, 1.0, got.Distribution.PowerDiversity)
	assert.InDelta(t, 0.4/0.6, got.Distribution.PowerBalance, 1e-9)
}

func TestTier(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 0}, {1, TierLow}, {2, TierMedium}, {3, TierHigh}, {10, TierHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tier(tt.n), "tier(%d)", tt.n)
	}
}

func TestStructured(t *testing.T) {
	in := model.StructuredInput{
		Actors: []model.NetworkActor{
			{Name: "county", Type: model.ActorGovernment, Resources: model.ResourceProfile{Political: 0.8, Economic: 0.6}},
			{Name: "村民", Resources: model.ResourceProfile{Discursive: 0.5, Symbolic: 0.3}},
			{Name: "firm", Type: model.ActorEnterprise, Resources: model.ResourceProfile{Technical: 0.9, Cultural: 0.5}},
			{Name: "lab", Type: model.ActorExpert, Resources: model.ResourceProfile{Technical: 0.5, Cultural: 0.3}},
		},
	}

	got := NewCalculator(rules.Default()).Analyze(in, extract.NewDocument(""))
	assert.Equal(t, model.ModeStructured, got.Mode)
	assert.InDelta(t, 0.7, got.Effects.Institutional, 1e-9)
	assert.InDelta(t, 0.4, got.Effects.Discursive, 1e-9)
	assert.InDelta(t, 0.55, got.Effects.Technical, 1e-9)
	assert.Equal(t, DefaultSymbolicPower, got.Effects.Symbolic)
	assert.InDelta(t, 2.25, got.Effects.Total, 1e-9)
}

func TestStructured_OutOfRangeResources(t *testing.T) {
	in := model.StructuredInput{
		Actors: []model.NetworkActor{
			{Name: "gov", Type: model.ActorGovernment, Resources: model.ResourceProfile{Political: 5, Economic: 3}},
		},
	}
	got := NewCalculator(rules.Default()).Structured(in)
	for _, d := range got.Effects.Dimensions() {
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 1.0)
	}
	assert.Equal(t, 1.0, got.Effects.Institutional)
}

func TestDistribution_AllZero(t *testing.T) {
	got := Distribution(model.PowerEffects{})
	if diff := cmp.Diff(model.PowerDistribution{}, got); diff != "" {
		t.Errorf("zero distribution mismatch (-want +got):\n%s", diff)
	}
}

func TestTextual_EmptyIsEmpty(t *testing.T) {
	got := NewCalculator(rules.Default()).Analyze(model.TextInput{}, extract.NewDocument(""))
	if diff := cmp.Diff(Empty(), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
