package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ppiankov/actornet/internal/model"
)

// Renderer writes reports as JSON, Markdown and a terminal summary
type Renderer struct {
	includeFooter bool
	sanitizer     *bluemonday.Policy
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{
		includeFooter: includeFooter,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// RenderMarkdown writes the Markdown report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return writeFile(path, []byte(r.Markdown(report)))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// clean strips markup from text lifted out of the source document
func (r *Renderer) clean(s string) string {
	return strings.TrimSpace(r.sanitizer.Sanitize(s))
}

// Markdown renders the report. Every span quoted from the source passes
// through the strict sanitizer first.
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Translation analysis: %s\n\n", r.clean(report.Subject))
	fmt.Fprintf(&b, "- Source: `%s`\n", report.Source)
	fmt.Fprintf(&b, "- Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Input mode: %s\n", report.InputMode)
	fmt.Fprintf(&b, "- Rules version: %s\n", report.RulesVersion)
	fmt.Fprintf(&b, "- Run: %s\n\n", report.RunID)

	b.WriteString("| Phase | Findings | Records | Compliance | Effectiveness |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, res := range report.Results {
		fmt.Fprintf(&b, "| %s | %t | %d | %.2f (%s) | %.2f (%s) |\n",
			res.Phase, res.HasFindings, len(res.Mechanisms),
			res.Compliance.Score, res.Compliance.Level,
			res.Effectiveness.Overall, res.Effectiveness.Level)
	}
	b.WriteString("\n")

	for _, res := range report.Results {
		r.phaseSection(&b, res)
	}

	if r.includeFooter {
		p := report.Principles
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "_Generated by actornet. Deterministic: %t. Transparent: %t. Rule-based: %t. ", p.Deterministic, p.Transparent, p.RuleBased)
		b.WriteString("Findings are literal cue matches, not interpretations._\n")
	}

	return b.String()
}

func (r *Renderer) phaseSection(b *strings.Builder, res model.AnalysisResult) {
	title := string(res.Phase)
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	fmt.Fprintf(b, "## %s\n\n", title)

	if !res.HasFindings && res.Network.StabilityScore == 0 {
		b.WriteString("No findings.\n\n")
		return
	}

	if len(res.Mechanisms) > 0 {
		b.WriteString("### Mechanisms\n\n")
		b.WriteString("| Type | Cue | Actor | Targets | Mechanism | Effectiveness |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, rec := range res.Mechanisms {
			fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %.2f |\n",
				rec.Type, r.clean(rec.Name), r.clean(rec.Actor),
				r.clean(strings.Join(rec.TargetActors, ", ")), rec.Mechanism, rec.Effectiveness)
		}
		b.WriteString("\n")
		for _, rec := range res.Mechanisms {
			fmt.Fprintf(b, "> %s\n>\n", r.clean(rec.SourceSpan))
		}
		b.WriteString("\n")
	}

	if len(res.Actors) > 0 {
		b.WriteString("### Actors\n\n")
		for _, a := range res.Actors {
			fmt.Fprintf(b, "- %s (%s): mobilization %s, contribution %s\n",
				r.clean(a.Name), a.ClassifiedType, a.MobilizationLevel, a.ContributionLevel)
		}
		b.WriteString("\n")
	}

	if len(res.ResourceFlows) > 0 {
		b.WriteString("### Resource flows\n\n")
		for _, f := range res.ResourceFlows {
			fmt.Fprintf(b, "- %s: %s via %s, volume %s\n", r.clean(f.Record), f.Direction, f.Mechanism, f.Volume)
		}
		b.WriteString("\n")
	}

	if len(res.Contradictions) > 0 {
		b.WriteString("### Contradictions\n\n")
		for _, c := range res.Contradictions {
			fmt.Fprintf(b, "- **%s** (%s): %s\n", c.ConflictType, c.Severity, r.clean(strings.Join(c.Actors, ", ")))
			if c.Evidence != "" {
				fmt.Fprintf(b, "  > %s\n", r.clean(c.Evidence))
			}
		}
		b.WriteString("\n")
	}

	n := res.Network
	b.WriteString("### Network\n\n")
	fmt.Fprintf(b, "- Stability: %.2f (%s, %s mode)\n", n.StabilityScore, n.StabilityLevel, n.Mode)
	fmt.Fprintf(b, "- Factors: commitment %.2f, density %.2f, goals %.2f, coordination %.2f\n",
		n.Factors.CommitmentLevel, n.Factors.ConnectionDensity, n.Factors.GoalAlignment, n.Factors.CoordinationEffectiveness)
	fmt.Fprintf(b, "- Structure: %s (centralization %.2f, complexity %.2f)\n\n",
		n.Structure.NetworkType, n.Structure.Centralization, n.Structure.Complexity)

	if len(res.BlackBoxes) > 0 {
		b.WriteString("### Black boxes\n\n")
		for _, bb := range res.BlackBoxes {
			fmt.Fprintf(b, "- %s via %s: stability %.2f, opacity %.2f, irreversibility %.2f\n",
				bb.Type, bb.FormationMechanism, bb.Stability, bb.Opacity, bb.Irreversibility)
		}
		b.WriteString("\n")
	}

	p := res.Power
	b.WriteString("### Power effects\n\n")
	fmt.Fprintf(b, "- Institutional %.2f, discursive %.2f, technical %.2f, symbolic %.2f (total %.2f, %s mode)\n",
		p.Effects.Institutional, p.Effects.Discursive, p.Effects.Technical, p.Effects.Symbolic, p.Effects.Total, p.Mode)
	fmt.Fprintf(b, "- Distribution: centralization %.2f, diversity %.2f, balance %.2f\n\n",
		p.Distribution.PowerCentralization, p.Distribution.PowerDiversity, p.Distribution.PowerBalance)

	if len(res.Process.Phases) > 0 {
		b.WriteString("### Process\n\n")
		for _, ph := range res.Process.Phases {
			fmt.Fprintf(b, "1. %s (cue %s, %s, %s)\n", ph.PhaseID, r.clean(ph.Cue), ph.Duration, ph.DurationSource)
		}
		b.WriteString("\n")
		for _, t := range res.Process.Transitions {
			fmt.Fprintf(b, "- %s -> %s via %q\n", t.From, t.To, r.clean(t.Connective))
		}
		for _, e := range res.Process.CriticalEvents {
			fmt.Fprintf(b, "- Event: %s (%s, during %s)\n", r.clean(e.Event), e.Significance, e.Timing)
		}
		fmt.Fprintf(b, "\nCompletion: %.0f%%, canonical order: %t\n\n", res.Process.CompletionRate*100, res.Process.CanonicalOrder)
	}

	if l := res.Localization; l != nil && len(l.Patterns) > 0 {
		b.WriteString("### Localized patterns\n\n")
		for _, pat := range l.Patterns {
			fmt.Fprintf(b, "- %s (%.2f): %s\n", pat.MechanismTag, pat.Effectiveness, r.clean(strings.Join(pat.MatchedKeywords, ", ")))
		}
		fmt.Fprintf(b, "\nAdaptation: %.2f (%s)\n\n", l.AdaptationScore, l.AdaptationLevel)
	}

	if len(res.Compliance.Signals) > 0 {
		b.WriteString("### Signals\n\n")
		for _, s := range res.Compliance.Signals {
			fmt.Fprintf(b, "- [%s] %s: %s\n", s.Severity, s.Type, s.Description)
		}
		b.WriteString("\n")
	}
}

// RenderSummary prints a short per-phase summary
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	_, _ = fmt.Fprintf(w, "\n%s (%s input)\n", report.Subject, report.InputMode)
	for _, res := range report.Results {
		_, _ = fmt.Fprintf(w, "  %-17s compliance %.2f %-6s effectiveness %.2f %-6s records %d\n",
			res.Phase, res.Compliance.Score, res.Compliance.Level,
			res.Effectiveness.Overall, res.Effectiveness.Level, len(res.Mechanisms))
	}
}
