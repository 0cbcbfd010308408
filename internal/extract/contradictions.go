package extract

import (
	"strings"

	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// Contradiction types
const (
	ConflictStanceReversal   = "stance_reversal"
	ConflictInterestConflict = "interest_conflict"
)

type stanceCount struct {
	support  int
	oppose   int
	evidence string // First sentence holding the minority stance once both exist
	order    int
}

// DetectContradictions surfaces opposing stances as findings. An actor
// supported in one sentence and opposed in another is a stance reversal;
// a sentence naming two or more actors with a conflict cue is an interest
// conflict. Within one sentence an oppose cue wins over a support cue.
func DetectContradictions(rs *rules.RuleSet, doc *Document) []model.Contradiction {
	lx := &rs.Lexicon
	stances := make(map[string]*stanceCount)
	var actorOrder []string
	var conflicts []model.Contradiction

	for _, span := range doc.Spans {
		labels := FindActorLabels(lx, span.Lower)
		if len(labels) == 0 {
			continue
		}

		oppose := lx.Oppose.Any(span.Lower)
		support := !oppose && lx.Support.Any(span.Lower)

		for _, label := range labels {
			sc, ok := stances[label]
			if !ok {
				sc = &stanceCount{order: len(actorOrder)}
				stances[label] = sc
				actorOrder = append(actorOrder, label)
			}
			switch {
			case oppose:
				sc.oppose++
				if sc.oppose == 1 && sc.support > 0 && sc.evidence == "" {
					sc.evidence = span.Text
				}
			case support:
				sc.support++
				if sc.support == 1 && sc.oppose > 0 && sc.evidence == "" {
					sc.evidence = span.Text
				}
			}
		}

		if len(labels) >= 2 && lx.Conflict.Any(span.Lower) {
			severity := model.LevelMedium
			if oppose {
				severity = model.LevelHigh
			}
			conflicts = append(conflicts, model.Contradiction{
				Actors:       append([]string{}, labels...),
				ConflictType: ConflictInterestConflict,
				Severity:     severity,
				Evidence:     span.Text,
			})
		}
	}

	findings := []model.Contradiction{}
	for _, label := range actorOrder {
		sc := stances[label]
		if sc.support == 0 || sc.oppose == 0 {
			continue
		}
		findings = append(findings, model.Contradiction{
			Actors:       []string{label},
			ConflictType: ConflictStanceReversal,
			Severity:     reversalSeverity(min(sc.support, sc.oppose)),
			Evidence:     sc.evidence,
		})
	}

	return dedupeContradictions(append(findings, conflicts...))
}

func reversalSeverity(n int) model.Level {
	switch {
	case n >= 3:
		return model.LevelHigh
	case n == 2:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

// dedupeContradictions keeps the first finding per (type, actors)
func dedupeContradictions(in []model.Contradiction) []model.Contradiction {
	seen := make(map[string]bool)
	out := []model.Contradiction{}
	for _, c := range in {
		key := c.ConflictType + "|" + strings.Join(c.Actors, ",")
		if !seen[key] {
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}
