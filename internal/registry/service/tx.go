package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"corpreg/internal/registry/metrics"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/requestcontext"
)

// txState is the lifecycle of a composite transaction:
// STARTED -> VALIDATING -> (ABORTED) | MUTATING -> COMMITTED | ABORTED.
type txState string

const (
	txStarted    txState = "STARTED"
	txValidating txState = "VALIDATING"
	txMutating   txState = "MUTATING"
	txCommitted  txState = "COMMITTED"
	txAborted    txState = "ABORTED"
)

const (
	opRegisterCompany      = "register_company"
	opUpdateCompanyCapital = "update_company_capital"
)

// txTracker logs state transitions and records the outcome of one composite
// transaction in metrics and tracing.
type txTracker struct {
	svc   *Service
	op    string
	state txState
	start time.Time
	span  trace.Span
}

func (s *Service) beginTx(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, *txTracker) {
	ctx, span := s.tracer.Start(ctx, "registry."+op, trace.WithAttributes(attrs...))
	t := &txTracker{svc: s, op: op, state: txStarted, start: time.Now(), span: span}
	s.logger.DebugContext(ctx, "transaction state",
		"operation", op,
		"state", txStarted,
		"request_id", requestcontext.RequestID(ctx),
	)
	return ctx, t
}

func (t *txTracker) transition(ctx context.Context, next txState) {
	t.svc.logger.DebugContext(ctx, "transaction state",
		"operation", t.op,
		"from", t.state,
		"state", next,
		"request_id", requestcontext.RequestID(ctx),
	)
	t.span.AddEvent(string(next))
	t.state = next
}

// finish moves to COMMITTED when err is nil and to ABORTED otherwise, then
// returns err unchanged.
func (t *txTracker) finish(ctx context.Context, err error) error {
	defer t.span.End()

	outcome := metrics.OutcomeCommitted
	if err != nil {
		outcome = metrics.OutcomeAborted
		t.transition(ctx, txAborted)
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		t.svc.logger.InfoContext(ctx, "transaction aborted",
			"operation", t.op,
			"code", dErrors.CodeOf(err),
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	} else {
		t.transition(ctx, txCommitted)
	}
	if t.svc.metrics != nil {
		t.svc.metrics.ObserveTransaction(t.op, outcome, t.start)
	}
	return err
}
