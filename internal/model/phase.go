package model

import (
	"fmt"
	"strings"
)

// Phase is one of the four translation stages
type Phase string

const (
	PhaseProblematization Phase = "problematization"
	PhaseInteressement    Phase = "interessement"
	PhaseEnrollment       Phase = "enrollment"
	PhaseMobilization     Phase = "mobilization"
)

// Phases returns the translation stages in canonical order
func Phases() []Phase {
	return []Phase{PhaseProblematization, PhaseInteressement, PhaseEnrollment, PhaseMobilization}
}

// Index returns the canonical position of the phase, or -1 if unknown
func (p Phase) Index() int {
	for i, known := range Phases() {
		if p == known {
			return i
		}
	}
	return -1
}

// ParsePhase parses a phase name (case-insensitive)
func ParsePhase(s string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	if p.Index() < 0 {
		return "", fmt.Errorf("unknown phase %q (want one of problematization, interessement, enrollment, mobilization)", s)
	}
	return p, nil
}

// ParsePhases parses a list of phase names; an empty list selects all phases
func ParsePhases(names []string) ([]Phase, error) {
	if len(names) == 0 {
		return Phases(), nil
	}

	seen := make(map[Phase]bool)
	var phases []Phase
	for _, name := range names {
		p, err := ParsePhase(name)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			phases = append(phases, p)
		}
	}

	// Keep canonical order regardless of flag order
	ordered := make([]Phase, 0, len(phases))
	for _, p := range Phases() {
		if seen[p] {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
