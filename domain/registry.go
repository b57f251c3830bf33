package domain

import (
	"fmt"
	"slices"

	"santa-lab/errors"

	"github.com/samber/lo"
)

// Registry is the read-only collection of participants for one exchange.
// All referential invariants are enforced at construction time.
type Registry struct {
	participants map[ParticipantID]Participant
	ids          []ParticipantID
}

// NewRegistry builds a registry from parsed participants. It rejects empty
// groups, duplicate identifiers and exclusions pointing at nobody. Every
// participant is excluded from receiving their own gift.
func NewRegistry(participants []Participant) (*Registry, error) {
	if len(participants) == 0 {
		return nil, errors.ErrNoParticipants
	}

	byID := make(map[ParticipantID]Participant, len(participants))
	for _, p := range participants {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %q", errors.ErrDuplicateParticipant, p.ID)
		}
		if p.Exclusions == nil {
			p.Exclusions = NewSet()
		}
		p.Exclusions.Add(p.ID)
		byID[p.ID] = p
	}

	ids := lo.Keys(byID)
	slices.Sort(ids)

	for _, id := range ids {
		unknown := lo.Filter(byID[id].Exclusions.Values(), func(excluded ParticipantID, _ int) bool {
			_, ok := byID[excluded]
			return !ok
		})
		if len(unknown) > 0 {
			return nil, fmt.Errorf("%w: participant %q excludes %v", errors.ErrUnknownExclusion, id, unknown)
		}
	}

	return &Registry{participants: byID, ids: ids}, nil
}

// IDs returns every participant identifier sorted. The slice is a copy,
// callers may reorder it freely.
func (r *Registry) IDs() []ParticipantID {
	return slices.Clone(r.ids)
}

func (r *Registry) Get(id ParticipantID) (Participant, bool) {
	p, ok := r.participants[id]
	return p, ok
}

func (r *Registry) Size() int {
	return len(r.ids)
}
