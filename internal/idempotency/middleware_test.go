package idempotency

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = time.Hour

func newTestMiddleware(t *testing.T) (*miniredis.Miniredis, *Middleware) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewMiddleware(NewRedisStore(client, ttl), nil)
}

// countingHandler answers with status and counts invocations.
func countingHandler(calls *atomic.Int32, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"call":` + strconv.Itoa(int(n)) + `}`))
	})
}

func send(h http.Handler, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/registration", strings.NewReader(body))
	if key != "" {
		req.Header.Set(HeaderKey, key)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRequestsWithoutKeyPassThrough(t *testing.T) {
	_, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))

	send(h, "", `{}`)
	send(h, "", `{}`)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSuccessfulResponseIsReplayed(t *testing.T) {
	_, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))

	first := send(h, "abc", `{"name":"x"}`)
	second := send(h, "abc", `{"name":"x"}`)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
	assert.Equal(t, "true", second.Header().Get(HeaderReplayed))
	assert.Empty(t, first.Header().Get(HeaderReplayed))
}

func TestFailedResponseIsNotStored(t *testing.T) {
	_, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusBadRequest))

	send(h, "abc", `{}`)
	rr := send(h, "abc", `{}`)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestInFlightKeyConflicts(t *testing.T) {
	mr, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))

	pending := `{"state":"pending","fingerprint":"` + fingerprintOf([]byte(`{}`)) + `"}`
	require.NoError(t, mr.Set(keyPrefix+"POST:/api/v1/companies/registration:abc", pending))

	rr := send(h, "abc", `{}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "in progress")
	assert.Zero(t, calls.Load())
}

func TestKeyReuseWithDifferentBodyConflicts(t *testing.T) {
	_, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))

	send(h, "abc", `{"capital":1}`)
	rr := send(h, "abc", `{"capital":2}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "different request")
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecordExpires(t *testing.T) {
	mr, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))

	send(h, "abc", `{}`)
	mr.FastForward(ttl + time.Second)
	send(h, "abc", `{}`)

	assert.Equal(t, int32(2), calls.Load())
}

func TestRedisUnavailableFailsOpen(t *testing.T) {
	mr, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))
	mr.Close()

	rr := send(h, "abc", `{}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOverlongKeyRejected(t *testing.T) {
	_, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))

	rr := send(h, strings.Repeat("k", maxKeyLength+1), `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, calls.Load())
}

func TestOversizeBodyRejectedBeforeReserve(t *testing.T) {
	mr, m := newTestMiddleware(t)
	var calls atomic.Int32
	h := m.Handler(countingHandler(&calls, http.StatusCreated))

	rr := send(h, "big", strings.Repeat("a", maxBodyLength+1))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "request body must be at most")
	assert.Zero(t, calls.Load())
	assert.Empty(t, mr.Keys(), "no key is reserved for a rejected body")

	rr = send(h, "big", strings.Repeat("a", maxBodyLength))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, int32(1), calls.Load())
}
