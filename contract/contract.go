//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"santa-lab/domain"
)

// IAssignmentEngine draws a complete assignment for a registry, or reports
// the attempt budget exhausted. It never returns a partial assignment.
type IAssignmentEngine interface {
	Assign(registry *domain.Registry) (domain.Assignment, error)
}

// IResultSink receives one finished assignment run. Sinks are invoked
// sequentially and the first failure aborts the remaining ones; work already
// done by earlier sinks is not rolled back.
type IResultSink interface {
	Consume(ctx context.Context, run domain.AssignmentRun) error
}
