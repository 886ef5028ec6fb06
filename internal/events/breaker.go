package events

import (
	"context"
	"errors"
	"log/slog"

	"corpreg/pkg/platform/circuit"
)

// ErrBrokerUnavailable is returned without contacting the broker while the
// circuit is open.
var ErrBrokerUnavailable = errors.New("event broker unavailable: circuit open")

// Guarded wraps a Publisher with a circuit breaker so a broker outage does
// not add a produce timeout to every request.
type Guarded struct {
	next    Publisher
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuarded(next Publisher, breaker *circuit.Breaker, logger *slog.Logger) *Guarded {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Guarded{next: next, breaker: breaker, logger: logger}
}

func (g *Guarded) Publish(ctx context.Context, event Event) error {
	if !g.breaker.Allow() {
		return ErrBrokerUnavailable
	}
	if err := g.next.Publish(ctx, event); err != nil {
		if _, change := g.breaker.RecordFailure(); change.Opened {
			g.logger.ErrorContext(ctx, "event broker circuit opened", "breaker", g.breaker.Name(), "error", err)
		}
		return err
	}
	if _, change := g.breaker.RecordSuccess(); change.Closed {
		g.logger.InfoContext(ctx, "event broker circuit closed", "breaker", g.breaker.Name())
	}
	return nil
}

func (g *Guarded) Close() error {
	return g.next.Close()
}
