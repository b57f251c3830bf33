package sink

import (
	"context"
	"log/slog"

	"santa-lab/domain"
	"santa-lab/infrastructure/storage"

	"github.com/samber/lo"
)

// HistorySink keeps a local trace of finished runs. It is only wired when a
// history path is configured; assignments are otherwise discarded once
// reported.
type HistorySink struct {
	repository storage.IRunRepository
	registry   *domain.Registry
	log        *slog.Logger
}

func NewHistorySink(repository storage.IRunRepository, registry *domain.Registry, log *slog.Logger) HistorySink {
	return HistorySink{repository: repository, registry: registry, log: log}
}

func (h HistorySink) Consume(_ context.Context, run domain.AssignmentRun) error {
	stored := toStoredRun(run, h.registry)
	if err := h.repository.StoreRun(stored); err != nil {
		return err
	}
	h.log.Debug("Run stored", "run_id", run.ID, "pairs", len(stored.Pairs))
	return nil
}

func toStoredRun(run domain.AssignmentRun, registry *domain.Registry) storage.StoredRun {
	pairs := lo.Map(run.Assignment.Pairs(registry), func(pair domain.Pair, _ int) storage.StoredPair {
		return storage.StoredPair{
			GiverID:      string(pair.Giver.ID),
			GiverName:    pair.Giver.Name,
			ReceiverID:   string(pair.Receiver.ID),
			ReceiverName: pair.Receiver.Name,
		}
	})
	return storage.StoredRun{
		RunID:     run.ID,
		CreatedAt: run.CreatedAt,
		Pairs:     pairs,
	}
}
