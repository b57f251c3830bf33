package sink

import (
	"context"
	"fmt"
	"io"

	"santa-lab/domain"

	"github.com/gookit/color"
)

// ConsoleSink renders an assignment run as plain text, one line per giver.
type ConsoleSink struct {
	registry *domain.Registry
	out      io.Writer
	colours  bool
}

func NewConsoleSink(registry *domain.Registry, out io.Writer, colours bool) ConsoleSink {
	return ConsoleSink{registry: registry, out: out, colours: colours}
}

func (c ConsoleSink) Consume(_ context.Context, run domain.AssignmentRun) error {
	header := fmt.Sprintf("Assignment Id: %s", run.ID)
	if c.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	if _, err := fmt.Fprintln(c.out, header); err != nil {
		return err
	}

	for _, pair := range run.Assignment.Pairs(c.registry) {
		if _, err := fmt.Fprintf(c.out, "%s will give to %s.\n", pair.Giver.Name, pair.Receiver.Name); err != nil {
			return err
		}
	}
	return nil
}
