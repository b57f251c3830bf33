// Package domain contains core concepts of the gift exchange.
// This file defines Participant entities and related invariants.
// No transport, storage, or UI logic should be added here.
package domain

import (
	"slices"

	"github.com/samber/lo"
)

type ParticipantID string

// Set is an unordered collection of participant identifiers.
type Set map[ParticipantID]struct{}

func NewSet(ids ...ParticipantID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s Set) Add(id ParticipantID) {
	s[id] = struct{}{}
}

func (s Set) Contains(id ParticipantID) bool {
	_, ok := s[id]
	return ok
}

// Values returns the members sorted, so iteration order is stable.
func (s Set) Values() []ParticipantID {
	ids := lo.Keys(s)
	slices.Sort(ids)
	return ids
}

// Participant represents one member of the gift exchange.
// Exclusions always contain the participant's own identifier once the
// participant has been registered.
type Participant struct {
	ID         ParticipantID
	Name       string
	Email      string
	Exclusions Set
}
