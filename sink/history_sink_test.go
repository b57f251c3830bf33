package sink

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"santa-lab/infrastructure/storage"
	"santa-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistorySink_Consume(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	t.Run("should store the run with resolved names", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIRunRepository(ctrl)
		historySink := NewHistorySink(repository, testRegistry(t), log)

		run := testRun()
		repository.EXPECT().StoreRun(storage.StoredRun{
			RunID:     "ab12cd3",
			CreatedAt: run.CreatedAt,
			Pairs: []storage.StoredPair{
				{GiverID: "a", GiverName: "Alice", ReceiverID: "b", ReceiverName: "Bob"},
				{GiverID: "b", GiverName: "Bob", ReceiverID: "c", ReceiverName: "Carol"},
				{GiverID: "c", GiverName: "Carol", ReceiverID: "a", ReceiverName: "Alice"},
			},
		}).Return(nil).Times(1)

		err := historySink.Consume(context.Background(), run)

		req.NoError(err)
	})

	t.Run("should surface repository failures", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIRunRepository(ctrl)
		historySink := NewHistorySink(repository, testRegistry(t), log)

		repository.EXPECT().StoreRun(gomock.Any()).
			Return(fmt.Errorf("disk full")).Times(1)

		err := historySink.Consume(context.Background(), testRun())

		req.Error(err)
		req.Contains(err.Error(), "disk full")
	})
}
