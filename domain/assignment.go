package domain

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Assignment maps each giver to the participant receiving their gift.
type Assignment map[ParticipantID]ParticipantID

// Validate checks that the assignment is a complete matching of the registry
// honouring every exclusion: each participant gives exactly once, receives
// exactly once, and never draws someone they excluded.
func (a Assignment) Validate(registry *Registry) error {
	if len(a) != registry.Size() {
		return fmt.Errorf("expected %d pairs, got %d", registry.Size(), len(a))
	}
	receivers := NewSet()
	for giver, receiver := range a {
		g, ok := registry.Get(giver)
		if !ok {
			return fmt.Errorf("unknown giver %q", giver)
		}
		if _, ok = registry.Get(receiver); !ok {
			return fmt.Errorf("unknown receiver %q", receiver)
		}
		if receivers.Contains(receiver) {
			return fmt.Errorf("participant %q receives more than once", receiver)
		}
		receivers.Add(receiver)
		if g.Exclusions.Contains(receiver) {
			return fmt.Errorf("giver %q drew excluded participant %q", giver, receiver)
		}
	}
	return nil
}

// Pair is one resolved giver/receiver couple.
type Pair struct {
	Giver    Participant
	Receiver Participant
}

// Pairs resolves identifiers against the registry, sorted by giver name so
// reports and e-mails always list participants in the same order. Entries
// that no longer resolve are skipped; Validate is the place to catch them.
func (a Assignment) Pairs(registry *Registry) []Pair {
	pairs := make([]Pair, 0, len(a))
	for giver, receiver := range a {
		g, ok := registry.Get(giver)
		if !ok {
			continue
		}
		rcv, ok := registry.Get(receiver)
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Giver: g, Receiver: rcv})
	}
	slices.SortFunc(pairs, func(x, y Pair) int {
		return cmp.Or(
			cmp.Compare(x.Giver.Name, y.Giver.Name),
			cmp.Compare(x.Giver.ID, y.Giver.ID),
		)
	})
	return pairs
}

// AssignmentRun is the reportable outcome of one successful draw. It lives
// for a single process: sinks consume it and the baseline flow discards it
// afterwards.
type AssignmentRun struct {
	ID         string
	Assignment Assignment
	CreatedAt  time.Time
}
