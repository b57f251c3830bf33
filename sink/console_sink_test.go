package sink

import (
	"bytes"
	"context"
	"testing"
	"time"

	"santa-lab/domain"

	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *domain.Registry {
	t.Helper()
	registry, err := domain.NewRegistry([]domain.Participant{
		{ID: "a", Name: "Alice", Email: "alice@example.com"},
		{ID: "b", Name: "Bob", Email: "bob@example.com"},
		{ID: "c", Name: "Carol", Email: "carol@example.com"},
	})
	require.NoError(t, err)
	return registry
}

func testRun() domain.AssignmentRun {
	return domain.AssignmentRun{
		ID:         "ab12cd3",
		Assignment: domain.Assignment{"a": "b", "b": "c", "c": "a"},
		CreatedAt:  time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestConsoleSink_Consume(t *testing.T) {
	t.Run("should print the run id and one line per giver", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		consoleSink := NewConsoleSink(testRegistry(t), &out, false)

		err := consoleSink.Consume(context.Background(), testRun())

		req.NoError(err)
		req.Equal(
			"Assignment Id: ab12cd3\n"+
				"Alice will give to Bob.\n"+
				"Bob will give to Carol.\n"+
				"Carol will give to Alice.\n",
			out.String(),
		)
	})

	t.Run("should keep the header text when colours are enabled", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		consoleSink := NewConsoleSink(testRegistry(t), &out, true)

		err := consoleSink.Consume(context.Background(), testRun())

		// Escape codes depend on the terminal, the text itself does not.
		req.NoError(err)
		req.Contains(out.String(), "Assignment Id: ab12cd3")
		req.Contains(out.String(), "Alice will give to Bob.")
	})
}
