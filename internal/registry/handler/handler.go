// Package handler exposes the registry over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"corpreg/internal/registry/models"
	"corpreg/internal/registry/service"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/platform/httputil"
	"corpreg/pkg/requestcontext"
)

// Service defines the registry operations used by the handlers.
type Service interface {
	CreatePerson(ctx context.Context, details models.PersonDetails) (*models.Person, error)
	GetPerson(ctx context.Context, id int64) (*models.PersonWithHoldings, error)
	ListPersons(ctx context.Context, filter models.PersonFilter) ([]*models.Person, error)
	UpdatePerson(ctx context.Context, id int64, details models.PersonDetails) (*models.Person, error)
	DeletePerson(ctx context.Context, id int64) error

	CreateCompany(ctx context.Context, in service.CompanyInput) (*models.Company, error)
	GetCompany(ctx context.Context, id int64) (*models.CompanyWithHoldings, error)
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, id int64, in service.CompanyInput) (*models.Company, error)
	DeleteCompany(ctx context.Context, id int64) error

	CreateShareholding(ctx context.Context, in service.ShareholdingInput) (*models.Shareholding, error)
	GetShareholding(ctx context.Context, id int64) (*models.ShareholdingWithParties, error)
	ListShareholdings(ctx context.Context, filter models.ShareholdingFilter) ([]*models.Shareholding, error)
	UpdateShareholding(ctx context.Context, id int64, in service.ShareholdingInput) (*models.Shareholding, error)
	DeleteShareholding(ctx context.Context, id int64) error

	RegisterCompany(ctx context.Context, reg *models.Registration) (*models.CompanyWithHoldings, error)
	UpdateCompanyCapital(ctx context.Context, upd *models.CapitalUpdate) (*models.CompanyWithHoldings, error)
}

// Handler handles the registry endpoints.
type Handler struct {
	svc       Service
	logger    *slog.Logger
	composite []func(http.Handler) http.Handler
}

type Option func(h *Handler)

// WithCompositeMiddleware wraps the registration and capital update routes,
// for example with idempotency key handling.
func WithCompositeMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.composite = append(h.composite, mw...)
	}
}

// New creates a registry Handler.
func New(svc Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the registry routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/persons", func(r chi.Router) {
		r.Post("/", h.handleCreatePerson)
		r.Get("/", h.handleListPersons)
		r.Get("/{id}", h.handleGetPerson)
		r.Put("/{id}", h.handleUpdatePerson)
		r.Delete("/{id}", h.handleDeletePerson)
	})
	r.Route("/companies", func(r chi.Router) {
		r.Post("/", h.handleCreateCompany)
		r.Get("/", h.handleListCompanies)
		r.With(h.composite...).Post("/registration", h.handleRegisterCompany)
		r.Get("/{id}", h.handleGetCompany)
		r.Put("/{id}", h.handleUpdateCompany)
		r.Delete("/{id}", h.handleDeleteCompany)
		r.With(h.composite...).Put("/{id}/capital_update", h.handleUpdateCompanyCapital)
	})
	r.Route("/shareholdings", func(r chi.Router) {
		r.Post("/", h.handleCreateShareholding)
		r.Get("/", h.handleListShareholdings)
		r.Get("/{id}", h.handleGetShareholding)
		r.Put("/{id}", h.handleUpdateShareholding)
		r.Delete("/{id}", h.handleDeleteShareholding)
	})
}

// fail logs err and writes the error envelope. Client errors log at warn,
// everything else at error.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	if dErrors.ToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"error", err,
		"code", dErrors.CodeOf(err),
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, err)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid id %q", raw)
	}
	return id, nil
}

// pageFromQuery reads skip and limit. Missing, malformed or out of range
// values fall back to the defaults.
func pageFromQuery(r *http.Request) models.Page {
	q := r.URL.Query()
	page := models.Page{Skip: 0, Limit: models.DefaultLimit}
	if v, err := strconv.Atoi(q.Get("skip")); err == nil {
		page.Skip = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		page.Limit = v
	}
	return page.Normalize()
}

func queryID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid %s %q", key, raw)
	}
	return id, nil
}

func queryDate(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	t, err := models.ParseDate(raw)
	if err != nil {
		return nil, dErrors.Newf(dErrors.CodeBadRequest, "invalid %s %q, expected YYYY-MM-DD", key, raw)
	}
	return &t, nil
}
