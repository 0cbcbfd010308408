// Package process reconstructs the process timeline of a translation stage
package process

import (
	"sort"
	"strings"

	"github.com/ppiankov/actornet/internal/extract"
	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// TimingUnspecified is the timing of an event preceding every detected phase
const TimingUnspecified = "unspecified"

// Tracker detects canonical process phases, transitions and critical events
type Tracker struct {
	rules *rules.RuleSet
}

// NewTracker creates a tracker over a rule set
func NewTracker(rs *rules.RuleSet) *Tracker {
	return &Tracker{rules: rs}
}

type detection struct {
	stage int
	cue   string
	pos   int
}

// Track builds the timeline of phase from the document. Each canonical
// process phase is emitted at most once, at its earliest cue, so the
// completion rate never exceeds 1.
func (t *Tracker) Track(phase model.Phase, doc *extract.Document) model.ProcessTimeline {
	timeline := Empty()
	tl, ok := t.rules.Timeline(phase)
	if !ok || len(tl.Stages) == 0 || doc.Empty() {
		return timeline
	}

	var found []detection
	for i, stage := range tl.Stages {
		if cue, pos := stage.Cues.Earliest(doc.Lower); pos >= 0 {
			found = append(found, detection{stage: i, cue: cue, pos: pos})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	for i, d := range found {
		stage := tl.Stages[d.stage]
		pp := model.ProcessPhase{
			PhaseID:        stage.ID,
			Cue:            d.cue,
			Objectives:     append([]string{}, stage.Objectives...),
			Activities:     append([]string{}, stage.Activities...),
			Duration:       stage.DefaultDuration,
			DurationSource: model.DurationDefault,
		}
		if idx := doc.SpanAt(d.pos); idx >= 0 {
			if explicit := extract.ExplicitDuration(doc.Spans[idx].Lower); explicit != extract.DurationUnspecified {
				pp.Duration = explicit
				pp.DurationSource = model.DurationExplicit
			}
		}
		timeline.Phases = append(timeline.Phases, pp)

		if i == 0 {
			continue
		}
		prev := found[i-1]
		if prev.stage > d.stage {
			timeline.CanonicalOrder = false
		}
		if connective, pos := t.rules.Connectives.Earliest(doc.Lower[prev.pos:d.pos]); pos >= 0 {
			timeline.Transitions = append(timeline.Transitions, model.Transition{
				From:       tl.Stages[prev.stage].ID,
				To:         stage.ID,
				Connective: strings.TrimSpace(connective),
			})
		}
	}

	timeline.CriticalEvents = t.events(doc, tl, found)
	timeline.CompletionRate = model.Clamp(float64(len(found)) / float64(len(tl.Stages)))
	return timeline
}

// events finds fixed event names in text order. Timing is the nearest
// detected phase at or before the event.
func (t *Tracker) events(doc *extract.Document, tl rules.Timeline, found []detection) []model.CriticalEvent {
	type hit struct {
		rule rules.EventRule
		pos  int
	}
	var hits []hit
	for _, ev := range t.rules.Events {
		if ev.Name == "" {
			continue
		}
		if pos := rules.Index(doc.Lower, ev.Name, 0); pos >= 0 {
			hits = append(hits, hit{rule: ev, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	events := []model.CriticalEvent{}
	for _, h := range hits {
		timing := TimingUnspecified
		for _, d := range found {
			if d.pos > h.pos {
				break
			}
			timing = tl.Stages[d.stage].ID
		}
		events = append(events, model.CriticalEvent{
			Event:        h.rule.Name,
			Significance: h.rule.Significance,
			Timing:       timing,
			Impact:       h.rule.Impact,
		})
	}
	return events
}

// Empty returns the timeline of a text with no phase cues
func Empty() model.ProcessTimeline {
	return model.ProcessTimeline{
		Phases:         []model.ProcessPhase{},
		Transitions:    []model.Transition{},
		CriticalEvents: []model.CriticalEvent{},
		CanonicalOrder: true,
	}
}
