package idempotency

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"strings"

	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/platform/httputil"
	"corpreg/pkg/requestcontext"
)

const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"

	maxKeyLength  = 255
	maxBodyLength = 1 << 20
)

// Middleware stores the first successful response per Idempotency-Key and
// replays it for repeats. Requests without the header pass through. When
// Redis is unreachable the request is served without idempotency.
type Middleware struct {
	store  *RedisStore
	logger *slog.Logger
}

func NewMiddleware(store *RedisStore, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Middleware{store: store, logger: logger}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get(HeaderKey))
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}
		if len(key) > maxKeyLength {
			httputil.WriteError(w, dErrors.Newf(dErrors.CodeBadRequest, "%s must be at most %d characters", HeaderKey, maxKeyLength))
			return
		}

		ctx := r.Context()
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyLength+1))
		if err != nil {
			httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "failed to read request body"))
			return
		}
		if len(body) > maxBodyLength {
			httputil.WriteError(w, dErrors.Newf(dErrors.CodeBadRequest, "request body must be at most %d bytes", maxBodyLength))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		scoped := r.Method + ":" + r.URL.Path + ":" + key
		fingerprint := fingerprintOf(body)

		existing, reserved, err := m.store.Reserve(ctx, scoped, fingerprint)
		if err != nil {
			m.logger.WarnContext(ctx, "idempotency store unavailable, serving request without it",
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			next.ServeHTTP(w, r)
			return
		}
		if !reserved {
			m.replay(ctx, w, existing, fingerprint)
			return
		}

		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// Use a fresh context: the request context may already be cancelled.
		storeCtx := context.WithoutCancel(ctx)
		if rec.status >= 200 && rec.status < 300 {
			err = m.store.Complete(storeCtx, scoped, Record{
				Fingerprint: fingerprint,
				Status:      rec.status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			})
		} else {
			err = m.store.Release(storeCtx, scoped)
		}
		if err != nil {
			m.logger.WarnContext(ctx, "failed to update idempotency record",
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
	})
}

func (m *Middleware) replay(ctx context.Context, w http.ResponseWriter, rec *Record, fingerprint string) {
	switch {
	case rec.Fingerprint != fingerprint:
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "idempotency key was already used with a different request"))
	case rec.State != stateCompleted:
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "a request with this idempotency key is in progress"))
	default:
		m.logger.InfoContext(ctx, "replaying idempotent response",
			"status", rec.Status,
			"request_id", requestcontext.RequestID(ctx),
		)
		if rec.ContentType != "" {
			w.Header().Set("Content-Type", rec.ContentType)
		}
		w.Header().Set(HeaderReplayed, "true")
		w.WriteHeader(rec.Status)
		_, _ = w.Write(rec.Body)
	}
}

func fingerprintOf(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// recorder passes the response through while keeping a copy.
type recorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (r *recorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
