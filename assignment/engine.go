// Package assignment implements the constrained random gift matching.
package assignment

import (
	"fmt"
	"log/slog"
	"math/rand"

	"santa-lab/domain"

	"github.com/samber/lo"
)

// DefaultMaxAttempts bounds the retry loop: one initial draw plus three
// retries.
const DefaultMaxAttempts = 4

// InfeasibleError reports that no valid assignment was found within the
// attempt budget. The restrictions are usually too tight for the group size.
type InfeasibleError struct {
	Attempts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("assignment restrictions cannot be easily met; attempts=%d. Please modify the configuration file", e.Attempts)
}

// Engine draws gift assignments with a caller-supplied random source.
// Injecting the source keeps draws reproducible under a fixed seed.
type Engine struct {
	rng         *rand.Rand
	log         *slog.Logger
	maxAttempts int
}

func NewEngine(rng *rand.Rand, log *slog.Logger, maxAttempts int) *Engine {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Engine{rng: rng, log: log, maxAttempts: maxAttempts}
}

// Assign draws a complete assignment for the registry. Attempts are
// independent: a failed draw discards its partial pairs and starts from
// scratch. Once the budget is spent the registry is reported infeasible
// together with the number of attempts made.
func (e *Engine) Assign(registry *domain.Registry) (domain.Assignment, error) {
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		assignment, ok := e.draw(registry)
		if ok {
			e.log.Debug("Assignment drawn", "attempt", attempt, "participants", registry.Size())
			return assignment, nil
		}
		e.log.Debug("Draw left a giver without candidates, retrying", "attempt", attempt)
	}
	return nil, &InfeasibleError{Attempts: e.maxAttempts}
}

// draw performs one greedy pass: givers in shuffled order each pick a random
// receiver among the participants still available to them. The pass fails as
// soon as a giver has no candidate left; earlier picks are never revisited,
// so a feasible group can still miss on an unlucky draw.
func (e *Engine) draw(registry *domain.Registry) (domain.Assignment, bool) {
	givers := registry.IDs()
	e.rng.Shuffle(len(givers), func(i, j int) {
		givers[i], givers[j] = givers[j], givers[i]
	})

	remaining := registry.IDs()
	assignment := make(domain.Assignment, len(givers))

	for _, giver := range givers {
		p, _ := registry.Get(giver)
		candidates := lo.Filter(remaining, func(id domain.ParticipantID, _ int) bool {
			return !p.Exclusions.Contains(id)
		})
		if len(candidates) == 0 {
			return nil, false
		}
		receiver := candidates[e.rng.Intn(len(candidates))]
		assignment[giver] = receiver
		remaining = lo.Without(remaining, receiver)
	}
	return assignment, true
}
