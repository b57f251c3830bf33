package assignment

import (
	"log/slog"
	"math/rand"
	"testing"

	"santa-lab/domain"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// generousAttempts keeps success-path tests independent of draw luck: the
// per-attempt failure odds on these registries decay geometrically, so a
// hundred attempts never run out in practice.
const generousAttempts = 100

func participant(id string, exclusions ...domain.ParticipantID) domain.Participant {
	return domain.Participant{
		ID:         domain.ParticipantID(id),
		Name:       id,
		Email:      id + "@example.com",
		Exclusions: domain.NewSet(exclusions...),
	}
}

func newRegistry(t *testing.T, participants ...domain.Participant) *domain.Registry {
	t.Helper()
	registry, err := domain.NewRegistry(participants)
	require.NoError(t, err)
	return registry
}

func TestEngine_Assign_ProducesValidAssignment(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	tests := []struct {
		name         string
		participants []domain.Participant
	}{
		{
			name: "Two participants without exclusions",
			participants: []domain.Participant{
				participant("alice"),
				participant("bob"),
			},
		},
		{
			name: "Three participants without exclusions",
			participants: []domain.Participant{
				participant("alice"),
				participant("bob"),
				participant("carol"),
			},
		},
		{
			name: "Six participants with scattered exclusions",
			participants: []domain.Participant{
				participant("alice", "bob"),
				participant("bob", "carol", "dave"),
				participant("carol"),
				participant("dave"),
				participant("erin", "alice"),
				participant("frank"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			registry := newRegistry(t, tt.participants...)
			engine := NewEngine(rand.New(rand.NewSource(42)), log, generousAttempts)

			assigned, err := engine.Assign(registry)

			req.NoError(err)
			req.NoError(assigned.Validate(registry))
		})
	}
}

func TestEngine_Assign_RespectsExclusions(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given: alice and bob form a couple that must not draw each other
	registry := newRegistry(t,
		participant("alice", "bob"),
		participant("bob", "alice"),
		participant("carol"),
		participant("dave"),
		participant("erin"),
	)
	engine := NewEngine(rand.New(rand.NewSource(7)), log, generousAttempts)

	// When: drawing an assignment
	assigned, err := engine.Assign(registry)

	// Then: the couple never ends up paired, in either direction
	req.NoError(err)
	req.NoError(assigned.Validate(registry))
	req.NotEqual(domain.ParticipantID("bob"), assigned["alice"])
	req.NotEqual(domain.ParticipantID("alice"), assigned["bob"])
}

func TestEngine_Assign_SameSeedSameDraw(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	participants := []domain.Participant{
		participant("alice", "bob"),
		participant("bob"),
		participant("carol", "dave"),
		participant("dave"),
		participant("erin"),
	}

	first, err := NewEngine(rand.New(rand.NewSource(1234)), log, generousAttempts).
		Assign(newRegistry(t, participants...))
	req.NoError(err)

	second, err := NewEngine(rand.New(rand.NewSource(1234)), log, generousAttempts).
		Assign(newRegistry(t, participants...))
	req.NoError(err)

	req.Equal(first, second)
}

// TestEngine_Assign_Infeasible covers registries where every draw must fail,
// whatever the seed: the engine spends its whole budget and reports the
// exact attempt count.
func TestEngine_Assign_Infeasible(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	tests := []struct {
		name         string
		participants []domain.Participant
		maxAttempts  int
		wantAttempts int
	}{
		{
			name:         "Single participant can only draw themselves",
			participants: []domain.Participant{participant("alice")},
			maxAttempts:  0, // zero falls back to the default budget
			wantAttempts: DefaultMaxAttempts,
		},
		{
			name: "Two participants excluding each other",
			participants: []domain.Participant{
				participant("alice", "bob"),
				participant("bob", "alice"),
			},
			maxAttempts:  DefaultMaxAttempts,
			wantAttempts: DefaultMaxAttempts,
		},
		{
			name: "One participant excluding the whole group",
			participants: []domain.Participant{
				participant("alice"),
				participant("bob"),
				participant("carol", "alice", "bob"),
			},
			maxAttempts:  7,
			wantAttempts: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			registry := newRegistry(t, tt.participants...)
			engine := NewEngine(rand.New(rand.NewSource(99)), log, tt.maxAttempts)

			assigned, err := engine.Assign(registry)

			req.Nil(assigned)
			var infeasible *InfeasibleError
			req.ErrorAs(err, &infeasible)
			req.Equal(tt.wantAttempts, infeasible.Attempts)
			req.Contains(err.Error(), "attempts=")
		})
	}
}

func TestInfeasibleError_Message(t *testing.T) {
	req := require.New(t)
	err := &InfeasibleError{Attempts: 4}
	req.Contains(err.Error(), "attempts=4")
	req.Contains(err.Error(), "modify the configuration file")
}
