package extract

import (
	"regexp"
	"sort"

	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// IndicatorWeight is the effectiveness adjustment per distinct positive or negative cue
const IndicatorWeight = 0.1

// DurationUnspecified is the implementation duration when the span states none
const DurationUnspecified = "unspecified"

var (
	// Up to three digits so calendar years like 2020年 are not durations
	cjkDuration   = regexp.MustCompile(`(?:^|[^0-9])([0-9]{1,3}|[一二三四五六七八九十两半]+)\s*(个月|年|周|天)`)
	latinDuration = regexp.MustCompile(`\b([0-9]{1,3})\s*(months?|years?|weeks?|days?)\b`)
)

// RecordExtractor applies a phase pattern library to a document
type RecordExtractor struct {
	rules *rules.RuleSet
}

// NewRecordExtractor creates an extractor over a rule set
func NewRecordExtractor(rs *rules.RuleSet) *RecordExtractor {
	return &RecordExtractor{rules: rs}
}

// Extract tries every rule of the phase library against every span.
// Each (rule, span) match yields one candidate record; duplicates are
// left for DedupeRecords. Records come out span-major, then in rule order.
func (e *RecordExtractor) Extract(phase model.Phase, doc *Document) []model.ExtractionRecord {
	lib, ok := e.rules.Library(phase)
	if !ok || doc.Empty() {
		return []model.ExtractionRecord{}
	}

	records := []model.ExtractionRecord{}
	for _, span := range doc.Spans {
		for _, rule := range lib.Rules {
			matched := rule.TriggerCues.Matched(span.Lower)
			if len(matched) == 0 {
				continue
			}
			records = append(records, e.record(lib, rule, matched[0], span))
		}
	}
	return records
}

func (e *RecordExtractor) record(lib rules.Library, rule rules.PatternRule, cue string, span Span) model.ExtractionRecord {
	lx := &e.rules.Lexicon

	mechanism, ok := rules.FirstMatch(lib.Mechanisms, span.Lower)
	if !ok {
		mechanism = lib.DefaultMechanism
	}

	actor, targets := assignActors(FindActorLabels(lx, span.Lower))

	effectiveness := rule.BaseEffectiveness +
		IndicatorWeight*float64(lx.Positive.Count(span.Lower)) -
		IndicatorWeight*float64(lx.Negative.Count(span.Lower))

	return model.ExtractionRecord{
		Type:            rule.Category,
		Name:            cue,
		SourceSpan:      span.Text,
		Actor:           actor,
		Mechanism:       mechanism,
		TargetActors:    targets,
		Effectiveness:   model.Clamp(effectiveness),
		Characteristics: append([]string{}, rule.Characteristics...),
		Implementation:  implementation(&lx.Implementation, span.Lower),
	}
}

// assignActors picks the initiating actor and the target set. With two or
// more labels the first one initiates; a lone label is a target of an
// unnamed initiator.
func assignActors(labels []string) (string, []string) {
	switch len(labels) {
	case 0:
		return model.PlaceholderInitiator, []string{model.PlaceholderParticipant}
	case 1:
		return model.PlaceholderInitiator, []string{labels[0]}
	default:
		return labels[0], append([]string{}, labels[1:]...)
	}
}

type labelHit struct {
	label string
	start int
	end   int
}

// FindActorLabels returns the distinct actor labels in lower, ordered by first
// occurrence. A label nested inside a longer matched label is ignored.
func FindActorLabels(lx *rules.Lexicon, lower string) []string {
	var hits []labelHit
	for _, al := range lx.ActorLabels {
		if al.Label == "" {
			continue
		}
		offset := 0
		for {
			start := rules.Index(lower, al.Label, offset)
			if start < 0 {
				break
			}
			hits = append(hits, labelHit{label: al.Label, start: start, end: start + len(al.Label)})
			offset = start + len(al.Label)
		}
	}

	// Earliest first; at the same offset the longer label wins
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].start != hits[j].start {
			return hits[i].start < hits[j].start
		}
		return hits[i].end > hits[j].end
	})

	seen := make(map[string]bool)
	var labels []string
	covered := -1
	for _, h := range hits {
		if h.start < covered {
			continue
		}
		covered = h.end
		if !seen[h.label] {
			seen[h.label] = true
			labels = append(labels, h.label)
		}
	}
	return labels
}

func implementation(ic *rules.ImplementationCues, lower string) model.Implementation {
	method, ok := rules.FirstMatch(ic.Methods, lower)
	if !ok {
		method = ic.DefaultMethod
	}
	scale, ok := rules.FirstMatch(ic.Scales, lower)
	if !ok {
		scale = ic.DefaultScale
	}
	resources := rules.AllMatches(ic.Resources, lower)
	if resources == nil {
		resources = []string{}
	}

	return model.Implementation{
		Method:    method,
		Scale:     scale,
		Duration:  ExplicitDuration(lower),
		Resources: resources,
	}
}

// ExplicitDuration returns the first duration expression in lower, such as
// "3个月" or "6 months", or DurationUnspecified
func ExplicitDuration(lower string) string {
	if m := cjkDuration.FindStringSubmatch(lower); m != nil {
		return m[1] + m[2]
	}
	if m := latinDuration.FindStringSubmatch(lower); m != nil {
		return m[1] + " " + m[2]
	}
	return DurationUnspecified
}
