package extract

import (
	"strings"

	"github.com/ppiankov/actornet/internal/model"
	"github.com/ppiankov/actornet/internal/rules"
)

// ActorIdentifier derives classified actors and resource flows from records
type ActorIdentifier struct {
	lexicon *rules.Lexicon
}

// NewActorIdentifier creates an identifier over the lexicon of a rule set
func NewActorIdentifier(rs *rules.RuleSet) *ActorIdentifier {
	return &ActorIdentifier{lexicon: &rs.Lexicon}
}

// Identify classifies every named actor of every record. Levels come from
// intensity cues in the record's span. Placeholders are not actors.
// Actors are not deduplicated here.
func (a *ActorIdentifier) Identify(records []model.ExtractionRecord) []model.Actor {
	actors := []model.Actor{}
	for _, rec := range records {
		lower := strings.ToLower(rec.SourceSpan)
		mobilization := a.lexicon.Mobilization.Level(lower)
		contribution := a.lexicon.Contribution.Level(lower)

		names := append([]string{rec.Actor}, rec.TargetActors...)
		for _, name := range names {
			if isPlaceholder(name) {
				continue
			}
			actors = append(actors, model.Actor{
				Name:              name,
				ClassifiedType:    a.lexicon.Classify(name),
				MobilizationLevel: mobilization,
				ContributionLevel: contribution,
			})
		}
	}
	return actors
}

// Flows emits one resource flow per record whose span carries a flow
// indicator. Records without one produce nothing.
func (a *ActorIdentifier) Flows(records []model.ExtractionRecord) []model.ResourceFlow {
	fc := &a.lexicon.Flows
	flows := []model.ResourceFlow{}
	for _, rec := range records {
		lower := strings.ToLower(rec.SourceSpan)
		if !fc.Indicators.Any(lower) {
			continue
		}

		direction := fc.DefaultDirection
		if name, ok := rules.FirstMatch(fc.Directions, lower); ok {
			direction = model.FlowDirection(name)
		}

		mechanism := fc.DefaultMechanism
		switch matched := rules.AllMatches(fc.Mechanisms, lower); len(matched) {
		case 0:
		case 1:
			mechanism = model.FlowMechanism(matched[0])
		default:
			mechanism = model.FlowMixedMechanism
		}

		volume := model.LevelMedium
		switch {
		case fc.HighVolume.Any(lower):
			volume = model.LevelHigh
		case fc.LowVolume.Any(lower):
			volume = model.LevelLow
		}

		flows = append(flows, model.ResourceFlow{
			Record:    rec.Name,
			Direction: direction,
			Mechanism: mechanism,
			Volume:    volume,
		})
	}
	return flows
}

func isPlaceholder(name string) bool {
	return name == "" || name == model.PlaceholderInitiator || name == model.PlaceholderParticipant
}

// Mentioned classifies every actor label named anywhere in the document,
// independent of extraction records. Levels come from the first span naming
// the actor; each label appears once.
func (a *ActorIdentifier) Mentioned(doc *Document) []model.Actor {
	actors := []model.Actor{}
	seen := make(map[string]bool)
	for _, span := range doc.Spans {
		for _, name := range FindActorLabels(a.lexicon, span.Lower) {
			if seen[name] {
				continue
			}
			seen[name] = true
			actors = append(actors, model.Actor{
				Name:              name,
				ClassifiedType:    a.lexicon.Classify(name),
				MobilizationLevel: a.lexicon.Mobilization.Level(span.Lower),
				ContributionLevel: a.lexicon.Contribution.Level(span.Lower),
			})
		}
	}
	return actors
}
