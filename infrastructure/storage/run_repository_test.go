package storage

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *RunRepository {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { db.Close() })

	blugeCfg := bluge.DefaultConfig(t.TempDir())
	blugeWriter, err := bluge.OpenWriter(blugeCfg)
	req.NoError(err)
	t.Cleanup(func() { blugeWriter.Close() })

	return NewRunRepository(db, blugeWriter, slog.Default())
}

func runFixture(id string, at time.Time, giver, receiver string) StoredRun {
	return StoredRun{
		RunID:     id,
		CreatedAt: at,
		Pairs: []StoredPair{
			{
				GiverID:      giver,
				GiverName:    giver,
				ReceiverID:   receiver,
				ReceiverName: receiver,
			},
		},
	}
}

func TestRunRepository_StoreAndList(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)
	base := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	stored := lo.Map([]string{"run0001", "run0002", "run0003"}, func(id string, i int) StoredRun {
		return runFixture(id, base.Add(time.Duration(i)*time.Minute), "Alice", "Bob")
	})
	for _, run := range stored {
		req.NoError(repo.StoreRun(run))
	}

	// When listing without a limit
	runs, err := repo.ListRuns(0)

	// Then everything comes back, newest first
	req.NoError(err)
	req.Len(runs, 3)
	req.Equal("run0003", runs[0].RunID)
	req.Equal("run0002", runs[1].RunID)
	req.Equal("run0001", runs[2].RunID)
	req.True(runs[0].CreatedAt.Equal(stored[2].CreatedAt))
	req.Equal(stored[2].Pairs, runs[0].Pairs)
}

func TestRunRepository_ListRuns_Limit(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)
	base := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	for i := 1; i <= 5; i++ {
		run := runFixture(
			fmt.Sprintf("run%04d", i),
			base.Add(time.Duration(i)*time.Minute),
			"Alice", "Bob",
		)
		req.NoError(repo.StoreRun(run))
	}

	runs, err := repo.ListRuns(2)

	req.NoError(err)
	req.Len(runs, 2)
	req.Equal("run0005", runs[0].RunID)
	req.Equal("run0004", runs[1].RunID)
}

func TestRunRepository_ListRuns_Empty(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)

	runs, err := repo.ListRuns(0)

	req.NoError(err)
	req.Empty(runs)
}

func TestRunRepository_SearchRuns(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := setupRepository(t)
	base := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	// Given three runs, two of them involving Alice
	req.NoError(repo.StoreRun(runFixture("run0001", base, "Alice", "Bob")))
	req.NoError(repo.StoreRun(runFixture("run0002", base.Add(time.Minute), "Carol", "Dave")))
	req.NoError(repo.StoreRun(runFixture("run0003", base.Add(2*time.Minute), "Alice", "Carol")))

	t.Run("should match on participant name regardless of case", func(t *testing.T) {
		runs, err := repo.SearchRuns(ctx, "alice", 10)

		req.NoError(err)
		req.Len(runs, 2)
		req.Equal("run0003", runs[0].RunID, "hits come back newest first")
		req.Equal("run0001", runs[1].RunID)
	})

	t.Run("should match a single run", func(t *testing.T) {
		runs, err := repo.SearchRuns(ctx, "Dave", 10)

		req.NoError(err)
		req.Len(runs, 1)
		req.Equal("run0002", runs[0].RunID)
	})

	t.Run("should return nothing for an unknown name", func(t *testing.T) {
		runs, err := repo.SearchRuns(ctx, "Zoe", 10)

		req.NoError(err)
		req.Empty(runs)
	})
}

func TestRunRepository_WithoutIndex(t *testing.T) {
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repo := NewRunRepository(db, nil, slog.Default())
	run := runFixture("run0001", time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC), "Alice", "Bob")

	// Storing and listing work without a Bluge writer
	req.NoError(repo.StoreRun(run))
	runs, err := repo.ListRuns(0)
	req.NoError(err)
	req.Len(runs, 1)

	// Search does not
	_, err = repo.SearchRuns(context.Background(), "Alice", 10)
	req.Error(err)
	req.Contains(err.Error(), "search index is not configured")
}
