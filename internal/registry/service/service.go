// Package service orchestrates the company registry: CRUD for persons,
// companies and shareholdings plus the two composite transactions that keep a
// company's cap table consistent with its capital.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"corpreg/internal/events"
	"corpreg/internal/registry/metrics"
	"corpreg/internal/registry/store"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/platform/sentinel"
	"corpreg/pkg/requestcontext"
)

const tracerName = "corpreg/internal/registry/service"

// Service reads through store and runs every write through tx.
type Service struct {
	store     store.Store
	tx        store.TxRunner
	logger    *slog.Logger
	metrics   *metrics.Metrics
	publisher events.Publisher
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithPublisher sets the sink for post-commit domain events.
func WithPublisher(publisher events.Publisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(st store.Store, tx store.TxRunner, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if tx == nil {
		return nil, errors.New("transaction runner is required")
	}
	s := &Service{
		store:     st,
		tx:        tx,
		logger:    slog.New(slog.DiscardHandler),
		publisher: events.Noop{},
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// publish delivers an event after commit. Failures are logged and counted but
// never surface to the caller.
func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish event",
			"event_type", event.Type,
			"event_id", event.ID,
			"aggregate_id", event.AggregateID,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementPublishFailures()
		}
	}
}

func (s *Service) incrementCreated(kind string, n int) {
	if s.metrics != nil && n > 0 {
		s.metrics.IncrementCreated(kind, n)
	}
}

// validationErr converts model invariant violations into validation errors
// for the API response.
func validationErr(err error) error {
	if de, ok := dErrors.As(err); ok && de.Code == dErrors.CodeInvariantViolation {
		return dErrors.New(dErrors.CodeValidation, de.Message)
	}
	return err
}

// translate maps store sentinels to coded errors. Already coded errors pass
// through unchanged.
func translate(err error, notFound, conflict, internal string) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFound)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConstraintViolation, conflict)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "operation timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internal)
	}
}
