package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/ent/apirequestevent"
)

func (r *eventRepo) AppendAPIRequest(ctx context.Context, data APIRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.APIRequestEvent.Create().
		SetSequence(seqNum).
		SetMethod(data.Method).
		SetEndpoint(data.Endpoint).
		SetStatus(data.Status).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetBestEffort(data.BestEffort).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save api request event: %w", err)
	}
	return nil
}

func (r *eventRepo) BestEffortFailures(ctx context.Context) (int, error) {
	n, err := r.client.APIRequestEvent.Query().
		Where(
			apirequestevent.BestEffort(true),
			apirequestevent.Success(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count best-effort failures: %w", err)
	}
	return n, nil
}
