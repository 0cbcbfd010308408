// Package rules holds the versioned, static rule tables that drive every
// analysis stage. A RuleSet is built once and never mutated at runtime.
package rules

import (
	"strings"
	"sync"

	"github.com/ppiankov/actornet/internal/model"
)

// Version identifies the built-in rule set; it is part of every cache key
const Version = "2026.10-2"

// Cues is an ordered list of lower-case literal cues
type Cues []string

// Matched returns the cues present in lower, in table order
func (c Cues) Matched(lower string) []string {
	var out []string
	for _, cue := range c {
		if Contains(lower, cue) {
			out = append(out, cue)
		}
	}
	return out
}

// Count returns how many distinct cues are present in lower
func (c Cues) Count(lower string) int {
	n := 0
	for _, cue := range c {
		if Contains(lower, cue) {
			n++
		}
	}
	return n
}

// Any reports whether at least one cue is present in lower
func (c Cues) Any(lower string) bool {
	for _, cue := range c {
		if Contains(lower, cue) {
			return true
		}
	}
	return false
}

// Earliest returns the cue occurring first in lower and its byte offset.
// Ties keep table order. pos is -1 when nothing matches.
func (c Cues) Earliest(lower string) (cue string, pos int) {
	pos = -1
	for _, candidate := range c {
		if candidate == "" {
			continue
		}
		if idx := Index(lower, candidate, 0); idx >= 0 && (pos < 0 || idx < pos) {
			cue, pos = candidate, idx
		}
	}
	return cue, pos
}

// NamedCues ties a result name to the cues that select it
type NamedCues struct {
	Name string `yaml:"name"`
	Cues Cues   `yaml:"cues"`
}

// FirstMatch returns the first entry (priority order) with a cue in lower
func FirstMatch(entries []NamedCues, lower string) (string, bool) {
	for _, e := range entries {
		if e.Cues.Any(lower) {
			return e.Name, true
		}
	}
	return "", false
}

// AllMatches returns every entry name with a cue in lower, in table order
func AllMatches(entries []NamedCues, lower string) []string {
	var out []string
	for _, e := range entries {
		if e.Cues.Any(lower) {
			out = append(out, e.Name)
		}
	}
	return out
}

// PatternRule is one lexical trigger rule of a phase library
type PatternRule struct {
	Category          string   `yaml:"category"`
	TriggerCues       Cues     `yaml:"trigger_cues"`
	BaseEffectiveness float64  `yaml:"base_effectiveness"`
	Characteristics   []string `yaml:"characteristics"`
}

// Library is the ordered pattern library of one translation phase
type Library struct {
	Phase model.Phase   `yaml:"phase"`
	Rules []PatternRule `yaml:"rules"`

	// Mechanisms is checked in order; the first entry with a cue in the span names the mechanism
	Mechanisms       []NamedCues `yaml:"mechanisms"`
	DefaultMechanism string      `yaml:"default_mechanism"`
}

// ActorLabel maps a literal actor label to its classification
type ActorLabel struct {
	Label string          `yaml:"label"`
	Type  model.ActorType `yaml:"type"`
}

// LevelCues rates lexical intensity. High wins over medium over low;
// no cue at all rates medium.
type LevelCues struct {
	High   Cues `yaml:"high"`
	Medium Cues `yaml:"medium"`
	Low    Cues `yaml:"low"`
}

// Level rates lower
func (l LevelCues) Level(lower string) model.Level {
	switch {
	case l.High.Any(lower):
		return model.LevelHigh
	case l.Medium.Any(lower):
		return model.LevelMedium
	case l.Low.Any(lower):
		return model.LevelLow
	default:
		return model.LevelMedium
	}
}

// ImplementationCues derive record implementation metadata
type ImplementationCues struct {
	Methods       []NamedCues `yaml:"methods"`
	DefaultMethod string      `yaml:"default_method"`
	Scales        []NamedCues `yaml:"scales"`
	DefaultScale  string      `yaml:"default_scale"`
	Resources     []NamedCues `yaml:"resources"`
}

// FlowCues drive resource-flow detection
type FlowCues struct {
	Indicators       Cues                `yaml:"indicators"`
	Directions       []NamedCues         `yaml:"directions"`
	DefaultDirection model.FlowDirection `yaml:"default_direction"`
	Mechanisms       []NamedCues         `yaml:"mechanisms"`
	DefaultMechanism model.FlowMechanism `yaml:"default_mechanism"`
	HighVolume       Cues                `yaml:"high_volume"`
	LowVolume        Cues                `yaml:"low_volume"`
}

// Lexicon holds the phase-independent cue tables
type Lexicon struct {
	ActorLabels    []ActorLabel       `yaml:"actor_labels"`
	Positive       Cues               `yaml:"positive"`
	Negative       Cues               `yaml:"negative"`
	Mobilization   LevelCues          `yaml:"mobilization"`
	Contribution   LevelCues          `yaml:"contribution"`
	Implementation ImplementationCues `yaml:"implementation"`
	Flows          FlowCues           `yaml:"flows"`
	Support        Cues               `yaml:"support"`
	Oppose         Cues               `yaml:"oppose"`
	Conflict       Cues               `yaml:"conflict"`
}

// Classify returns the type of an actor label; unknown labels are "other"
func (l *Lexicon) Classify(label string) model.ActorType {
	lower := strings.ToLower(strings.TrimSpace(label))
	for _, al := range l.ActorLabels {
		if al.Label == lower {
			return al.Type
		}
	}
	return model.ActorOther
}

// NetworkCues feed the textual network calculator
type NetworkCues struct {
	Commitment     Cues `yaml:"commitment"`
	Connection     Cues `yaml:"connection"`
	GoalAlignment  Cues `yaml:"goal_alignment"`
	Coordination   Cues `yaml:"coordination"`
	Centralization Cues `yaml:"centralization"`
}

// PowerCues feed the textual power calculator
type PowerCues struct {
	Institutional Cues `yaml:"institutional"`
	Discursive    Cues `yaml:"discursive"`
	Technical     Cues `yaml:"technical"`
	Symbolic      Cues `yaml:"symbolic"`
}

// BlackBoxRule detects one black-box type
type BlackBoxRule struct {
	Type               model.BlackBoxType `yaml:"type"`
	FormationMechanism string             `yaml:"formation_mechanism"`
	Indicators         Cues               `yaml:"indicators"`
}

// TimelineStage is one canonical process phase of a translation stage
type TimelineStage struct {
	ID              string   `yaml:"id"`
	Cues            Cues     `yaml:"cues"`
	Objectives      []string `yaml:"objectives"`
	Activities      []string `yaml:"activities"`
	DefaultDuration string   `yaml:"default_duration"`
}

// Timeline is the ordered stage table of one translation phase
type Timeline struct {
	Phase  model.Phase     `yaml:"phase"`
	Stages []TimelineStage `yaml:"stages"`
}

// EventRule is an exact critical-event name with pre-assigned significance
type EventRule struct {
	Name         string             `yaml:"name"`
	Significance model.Significance `yaml:"significance"`
	Impact       string             `yaml:"impact"`
}

// LocalizationRule recognizes one culture-specific mobilization idiom
type LocalizationRule struct {
	Tag             string `yaml:"tag"`
	CulturalContext string `yaml:"cultural_context"`
	Keywords        Cues   `yaml:"keywords"`
}

// RuleSet is the complete, versioned rule configuration
type RuleSet struct {
	Version      string             `yaml:"version"`
	Libraries    []Library          `yaml:"libraries"`
	Lexicon      Lexicon            `yaml:"lexicon"`
	Network      NetworkCues        `yaml:"network"`
	Power        PowerCues          `yaml:"power"`
	BlackBoxes   []BlackBoxRule     `yaml:"black_boxes"`
	Timelines    []Timeline         `yaml:"timelines"`
	Connectives  Cues               `yaml:"connectives"`
	Events       []EventRule        `yaml:"events"`
	Localization []LocalizationRule `yaml:"localization"`
}

// Library returns the pattern library of a phase
func (rs *RuleSet) Library(phase model.Phase) (Library, bool) {
	for _, lib := range rs.Libraries {
		if lib.Phase == phase {
			return lib, true
		}
	}
	return Library{}, false
}

// Timeline returns the stage table of a phase
func (rs *RuleSet) Timeline(phase model.Phase) (Timeline, bool) {
	for _, tl := range rs.Timelines {
		if tl.Phase == phase {
			return tl, true
		}
	}
	return Timeline{}, false
}

var (
	defaultOnce sync.Once
	defaultSet  *RuleSet
)

// Default returns the built-in rule set. The value is shared; callers must not mutate it.
func Default() *RuleSet {
	defaultOnce.Do(func() {
		defaultSet = &RuleSet{
			Version:      Version,
			Libraries:    defaultLibraries(),
			Lexicon:      defaultLexicon(),
			Network:      defaultNetworkCues(),
			Power:        defaultPowerCues(),
			BlackBoxes:   defaultBlackBoxes(),
			Timelines:    defaultTimelines(),
			Connectives:  defaultConnectives(),
			Events:       defaultEvents(),
			Localization: defaultLocalization(),
		}
	})
	return defaultSet
}
