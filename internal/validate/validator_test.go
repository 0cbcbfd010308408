package validate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/process"
)

func completeDraft(phase model.Phase) *Draft {
	timeline := process.Empty()
	return &Draft{
		Phase: phase,
		Mechanisms: []model.ExtractionRecord{
			{Type: "institutional_sponsorship", Name: "补贴", Effectiveness: 0.7, TargetActors: []string{"企业"}},
		},
		Actors:     []model.Actor{{Name: "企业", ClassifiedType: model.ActorEnterprise}},
		BlackBoxes: []model.BlackBox{{Type: model.BlackBoxTechnical, Stability: 0.18}},
		Power: &model.PowerAnalysis{
			Mode:    model.ModeTextual,
			Effects: model.PowerEffects{Institutional: 0.4, Total: 0.4},
		},
		Network: &model.NetworkAnalysis{Mode: model.ModeTextual, StabilityLevel: model.LevelLow},
		Process: &timeline,
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Draft)
		wantErr []string
	}{
		{"complete", func(d *Draft) {}, nil},
		{"empty but present", func(d *Draft) {
			d.Mechanisms = []model.ExtractionRecord{}
			d.BlackBoxes = []model.BlackBox{}
		}, nil},
		{"missing mechanisms", func(d *Draft) { d.Mechanisms = nil }, []string{"mechanisms missing"}},
		{"missing everything", func(d *Draft) {
			d.Mechanisms = nil
			d.BlackBoxes = nil
			d.Power = nil
		}, []string{"mechanisms missing", "black_box_formation missing", "power_effects missing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft(model.PhaseInteressement)
			tt.mutate(d)
			err := Check(d)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIncomplete))
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}

	assert.ErrorIs(t, Check(nil), ErrIncomplete)
}

func TestSynthesize_Complete(t *testing.T) {
	res, err := NewSynthesizer().Synthesize(completeDraft(model.PhaseInteressement))
	require.NoError(t, err)

	assert.True(t, res.HasFindings)
	assert.False(t, res.HasMobilization)
	assert.Nil(t, res.Localization, "localization belongs to mobilization only")
	assert.NotNil(t, res.ResourceFlows)
	assert.NotNil(t, res.Contradictions)
	assert.InDelta(t, 1.0, res.Compliance.Score, 1e-9)
	assert.Equal(t, model.LevelHigh, res.Compliance.Level)
	assert.InDelta(t, 0.7, res.Effectiveness.Mechanism, 1e-9)
}

func TestSynthesize_Mobilization(t *testing.T) {
	d := completeDraft(model.PhaseMobilization)
	res, err := NewSynthesizer().Synthesize(d)
	require.NoError(t, err)

	assert.True(t, res.HasMobilization)
	require.NotNil(t, res.Localization, "mobilization always carries the localization section")
	assert.Empty(t, res.Localization.Patterns)
}

func TestSynthesize_DiscardsIncomplete(t *testing.T) {
	d := completeDraft(model.PhaseEnrollment)
	d.Power = nil

	res, err := NewSynthesizer().Synthesize(d)
	require.Error(t, err)

	if diff := cmp.Diff(DefaultResult(model.PhaseEnrollment), res); diff != "" {
		t.Errorf("expected default result (-want +got):\n%s", diff)
	}
}

func TestSynthesize_NoFindings(t *testing.T) {
	d := completeDraft(model.PhaseMobilization)
	d.Mechanisms = []model.ExtractionRecord{}
	d.BlackBoxes = []model.BlackBox{}

	res, err := NewSynthesizer().Synthesize(d)
	require.NoError(t, err)
	assert.False(t, res.HasFindings)
	assert.False(t, res.HasMobilization)
}

func TestDefaultResult_Shape(t *testing.T) {
	for _, phase := range model.Phases() {
		res := DefaultResult(phase)
		assert.False(t, res.HasFindings)
		assert.NotNil(t, res.Mechanisms)
		assert.NotNil(t, res.Actors)
		assert.NotNil(t, res.BlackBoxes)
		assert.NotNil(t, res.Process.Phases)
		assert.Equal(t, 0.0, res.Process.CompletionRate)
		assert.Equal(t, 0.0, res.Power.Distribution.PowerCentralization)
		assert.Equal(t, phase == model.PhaseMobilization, res.Localization != nil)
	}
}
