package rules

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/actornet/internal/model"
)

// Load reads a complete replacement rule set from a YAML file
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes, normalizes and checks a YAML rule set
func Parse(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	rs.normalize()
	if err := rs.Check(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Marshal renders the rule set as YAML
func (rs *RuleSet) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(rs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules: %w", err)
	}
	return data, nil
}

// Check validates the structural requirements of a rule set
func (rs *RuleSet) Check() error {
	var errs []error
	if strings.TrimSpace(rs.Version) == "" {
		errs = append(errs, errors.New("version is required"))
	}

	for _, phase := range model.Phases() {
		lib, ok := rs.Library(phase)
		if !ok {
			errs = append(errs, fmt.Errorf("library %s: missing", phase))
		} else {
			errs = append(errs, checkLibrary(lib)...)
		}

		tl, ok := rs.Timeline(phase)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("timeline %s: missing", phase))
		case len(tl.Stages) != 4:
			errs = append(errs, fmt.Errorf("timeline %s: want 4 stages, got %d", phase, len(tl.Stages)))
		default:
			for _, st := range tl.Stages {
				if st.ID == "" || len(st.Cues) == 0 {
					errs = append(errs, fmt.Errorf("timeline %s: stage %q needs an id and cues", phase, st.ID))
				}
				if st.DefaultDuration == "" {
					errs = append(errs, fmt.Errorf("timeline %s: stage %q has no default duration", phase, st.ID))
				}
			}
		}
	}

	if len(rs.Lexicon.ActorLabels) == 0 {
		errs = append(errs, errors.New("lexicon: no actor labels"))
	}
	for _, al := range rs.Lexicon.ActorLabels {
		if !knownActorType(al.Type) {
			errs = append(errs, fmt.Errorf("lexicon: label %q has unknown type %q", al.Label, al.Type))
		}
	}
	if len(rs.Lexicon.Flows.Indicators) == 0 {
		errs = append(errs, errors.New("lexicon: no flow indicators"))
	}

	for _, bb := range rs.BlackBoxes {
		if len(bb.Indicators) == 0 {
			errs = append(errs, fmt.Errorf("black box %s: no indicators", bb.Type))
		}
	}
	for _, ev := range rs.Events {
		switch ev.Significance {
		case model.SignificanceCritical, model.SignificanceMajor, model.SignificanceMinor:
		default:
			errs = append(errs, fmt.Errorf("event %q: unknown significance %q", ev.Name, ev.Significance))
		}
	}
	for _, lr := range rs.Localization {
		if lr.Tag == "" || len(lr.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("localization %q: needs a tag and keywords", lr.Tag))
		}
	}

	return errors.Join(errs...)
}

func checkLibrary(lib Library) []error {
	var errs []error
	if len(lib.Rules) == 0 {
		errs = append(errs, fmt.Errorf("library %s: no rules", lib.Phase))
	}
	for _, r := range lib.Rules {
		if r.Category == "" {
			errs = append(errs, fmt.Errorf("library %s: rule without category", lib.Phase))
		}
		if len(r.TriggerCues) == 0 {
			errs = append(errs, fmt.Errorf("library %s: rule %q has no trigger cues", lib.Phase, r.Category))
		}
		if r.BaseEffectiveness < 0 || r.BaseEffectiveness > 1 {
			errs = append(errs, fmt.Errorf("library %s: rule %q base effectiveness %.2f outside [0,1]",
				lib.Phase, r.Category, r.BaseEffectiveness))
		}
	}
	if lib.DefaultMechanism == "" {
		errs = append(errs, fmt.Errorf("library %s: no default mechanism", lib.Phase))
	}
	return errs
}

func knownActorType(t model.ActorType) bool {
	switch t {
	case model.ActorGovernment, model.ActorEnterprise, model.ActorPublic, model.ActorExpert, model.ActorOther:
		return true
	}
	return false
}

// normalize lower-cases, trims and dedupes every cue so matching against
// lower-cased text stays literal
func (rs *RuleSet) normalize() {
	for i := range rs.Libraries {
		lib := &rs.Libraries[i]
		lib.Phase = model.Phase(strings.ToLower(strings.TrimSpace(string(lib.Phase))))
		for j := range lib.Rules {
			lib.Rules[j].TriggerCues = lib.Rules[j].TriggerCues.normalized()
		}
		normalizeNamed(lib.Mechanisms)
	}

	lx := &rs.Lexicon
	for i := range lx.ActorLabels {
		lx.ActorLabels[i].Label = strings.ToLower(strings.TrimSpace(lx.ActorLabels[i].Label))
	}
	lx.Positive = lx.Positive.normalized()
	lx.Negative = lx.Negative.normalized()
	lx.Mobilization = lx.Mobilization.normalized()
	lx.Contribution = lx.Contribution.normalized()
	normalizeNamed(lx.Implementation.Methods)
	normalizeNamed(lx.Implementation.Scales)
	normalizeNamed(lx.Implementation.Resources)
	lx.Flows.Indicators = lx.Flows.Indicators.normalized()
	normalizeNamed(lx.Flows.Directions)
	normalizeNamed(lx.Flows.Mechanisms)
	lx.Flows.HighVolume = lx.Flows.HighVolume.normalized()
	lx.Flows.LowVolume = lx.Flows.LowVolume.normalized()
	lx.Support = lx.Support.normalized()
	lx.Oppose = lx.Oppose.normalized()
	lx.Conflict = lx.Conflict.normalized()

	nc := &rs.Network
	nc.Commitment = nc.Commitment.normalized()
	nc.Connection = nc.Connection.normalized()
	nc.GoalAlignment = nc.GoalAlignment.normalized()
	nc.Coordination = nc.Coordination.normalized()
	nc.Centralization = nc.Centralization.normalized()

	pc := &rs.Power
	pc.Institutional = pc.Institutional.normalized()
	pc.Discursive = pc.Discursive.normalized()
	pc.Technical = pc.Technical.normalized()
	pc.Symbolic = pc.Symbolic.normalized()

	for i := range rs.BlackBoxes {
		rs.BlackBoxes[i].Indicators = rs.BlackBoxes[i].Indicators.normalized()
	}
	for i := range rs.Timelines {
		tl := &rs.Timelines[i]
		tl.Phase = model.Phase(strings.ToLower(strings.TrimSpace(string(tl.Phase))))
		for j := range tl.Stages {
			tl.Stages[j].Cues = tl.Stages[j].Cues.normalized()
		}
	}
	rs.Connectives = rs.Connectives.normalized()
	for i := range rs.Events {
		rs.Events[i].Name = strings.ToLower(strings.TrimSpace(rs.Events[i].Name))
	}
	for i := range rs.Localization {
		rs.Localization[i].Keywords = rs.Localization[i].Keywords.normalized()
	}
}

func (c Cues) normalized() Cues {
	if len(c) == 0 {
		return c
	}
	seen := make(map[string]bool, len(c))
	out := make(Cues, 0, len(c))
	for _, cue := range c {
		cue = strings.ToLower(strings.TrimSpace(cue))
		if cue == "" || seen[cue] {
			continue
		}
		seen[cue] = true
		out = append(out, cue)
	}
	return out
}

func (l LevelCues) normalized() LevelCues {
	return LevelCues{High: l.High.normalized(), Medium: l.Medium.normalized(), Low: l.Low.normalized()}
}

func normalizeNamed(entries []NamedCues) {
	for i := range entries {
		entries[i].Cues = entries[i].Cues.normalized()
	}
}
