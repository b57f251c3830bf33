package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"santa-lab/assignment"
	"santa-lab/contract"
	"santa-lab/domain"
)

type IAssignmentService interface {
	Run(ctx context.Context, registry *domain.Registry) (domain.AssignmentRun, error)
}

// AssignmentService draws an assignment, stamps it with a run identifier and
// hands it to every registered sink in order.
type AssignmentService struct {
	engine contract.IAssignmentEngine
	sinks  []contract.IResultSink
	log    *slog.Logger

	// Overridable in tests to pin identifiers and timestamps.
	newID func() string
	now   func() time.Time
}

func NewAssignmentService(engine contract.IAssignmentEngine, log *slog.Logger, sinks ...contract.IResultSink) *AssignmentService {
	return &AssignmentService{
		engine: engine,
		sinks:  sinks,
		log:    log,
		newID:  assignment.NewRunID,
		now:    time.Now,
	}
}

// Run executes one full draw-and-report cycle. Sink errors abort the
// remaining sinks; an engine failure reports nothing at all.
func (s *AssignmentService) Run(ctx context.Context, registry *domain.Registry) (domain.AssignmentRun, error) {
	assigned, err := s.engine.Assign(registry)
	if err != nil {
		return domain.AssignmentRun{}, err
	}

	run := domain.AssignmentRun{
		ID:         s.newID(),
		Assignment: assigned,
		CreatedAt:  s.now().UTC(),
	}
	s.log.Info("Assignment drawn", "run_id", run.ID, "participants", registry.Size())

	for _, resultSink := range s.sinks {
		if err := resultSink.Consume(ctx, run); err != nil {
			return domain.AssignmentRun{}, fmt.Errorf("reporting failed for run %s: %w", run.ID, err)
		}
	}

	return run, nil
}
