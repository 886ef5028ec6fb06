package httptransport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpreg/internal/platform/metrics"
	"corpreg/internal/platform/middleware"
	"corpreg/pkg/testutil"
)

type pingAPI struct{}

func (pingAPI) Register(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}

func newTestRouter(checks ...HealthCheck) http.Handler {
	reg := prometheus.NewRegistry()
	return NewRouter(Config{
		Metrics:        metrics.NewWithRegisterer(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		APIPrefix:      "/api/v1",
		CORSOrigins:    []string{"*"},
		Service:        ServiceInfo{Name: "corpreg", Version: "test"},
		Checks:         checks,
	}, pingAPI{})
}

func TestInfo(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(), testutil.NewRequest(t, http.MethodGet, "/"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "name", "corpreg")
}

func TestHealth(t *testing.T) {
	healthy := HealthCheck{Name: "database", Check: func(context.Context) error { return nil }}
	down := HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }}

	t.Run("all checks pass", func(t *testing.T) {
		rr := testutil.DoRequest(newTestRouter(healthy), testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[healthResponse](t, rr)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Checks["database"])
	})

	t.Run("a failing check is 503", func(t *testing.T) {
		rr := testutil.DoRequest(newTestRouter(healthy, down), testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		resp := testutil.UnmarshalResponse[healthResponse](t, rr)
		assert.Equal(t, "unavailable", resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["redis"])
	})
}

func TestAPIRoutesUnderPrefix(t *testing.T) {
	router := newTestRouter()

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/ping/"))
	testutil.AssertStatusOK(t, rr)
	assert.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/ping"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestAPIRejectsNonJSONBodies(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ping", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := testutil.DoRequest(newTestRouter(), req)
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")

	rr = testutil.DoRequest(newTestRouter(), testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/ping", map[string]string{}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
}

func TestMetricsEndpointExposesLatency(t *testing.T) {
	router := newTestRouter()
	testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/ping"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
	body := rr.Body.String()
	require.Contains(t, body, "corpreg_http_request_duration_seconds")
	assert.Contains(t, body, `route="/api/v1/ping"`)
}
