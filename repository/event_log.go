package repository

import (
	"context"

	"go-splendor/game"

	"go.uber.org/multierr"
)

// FanoutLog appends to every log and reads from the first one.
type FanoutLog struct {
	logs []EventLog
}

func NewFanoutLog(primary EventLog, others ...EventLog) *FanoutLog {
	return &FanoutLog{logs: append([]EventLog{primary}, others...)}
}

// AppendEvents writes to all logs even when one fails and returns the combined error.
func (f *FanoutLog) AppendEvents(ctx context.Context, gameID string, events []game.Event) error {
	var err error
	for _, l := range f.logs {
		err = multierr.Append(err, l.AppendEvents(ctx, gameID, events))
	}
	return err
}

func (f *FanoutLog) ListEvents(ctx context.Context, gameID string) ([]game.Event, error) {
	return f.logs[0].ListEvents(ctx, gameID)
}
