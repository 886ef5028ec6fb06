package handler

import (
	"net/http"
	"strings"

	"corpreg/internal/registry/models"
	"corpreg/internal/registry/service"
	"corpreg/pkg/platform/httputil"
)

func (h *Handler) decodeCompany(r *http.Request) (service.CompanyInput, error) {
	var req CompanyRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		return service.CompanyInput{}, err
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return service.CompanyInput{}, err
	}
	return req.Input()
}

func (h *Handler) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in, err := h.decodeCompany(r)
	if err != nil {
		h.fail(ctx, w, "invalid create company request", err)
		return
	}
	company, err := h.svc.CreateCompany(ctx, in)
	if err != nil {
		h.fail(ctx, w, "failed to create company", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCompanyResponse(company))
}

func (h *Handler) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	foundedAfter, err := queryDate(r, "founded_after")
	if err != nil {
		h.fail(ctx, w, "invalid company filter", err)
		return
	}
	companies, err := h.svc.ListCompanies(ctx, models.CompanyFilter{
		Name:         strings.TrimSpace(r.URL.Query().Get("name")),
		FoundedAfter: foundedAfter,
		Page:         pageFromQuery(r),
	})
	if err != nil {
		h.fail(ctx, w, "failed to list companies", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyResponses(companies))
}

func (h *Handler) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid company id", err)
		return
	}
	result, err := h.svc.GetCompany(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to get company", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyDetailResponse(result))
}

func (h *Handler) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid company id", err)
		return
	}
	in, err := h.decodeCompany(r)
	if err != nil {
		h.fail(ctx, w, "invalid update company request", err)
		return
	}
	company, err := h.svc.UpdateCompany(ctx, id, in)
	if err != nil {
		h.fail(ctx, w, "failed to update company", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyResponse(company))
}

func (h *Handler) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid company id", err)
		return
	}
	if err := h.svc.DeleteCompany(ctx, id); err != nil {
		h.fail(ctx, w, "failed to delete company", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRegisterCompany creates a company with its founding shareholders.
func (h *Handler) handleRegisterCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegistrationRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(ctx, w, "invalid registration request", err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.fail(ctx, w, "invalid registration request", err)
		return
	}
	reg, err := req.ToModel()
	if err != nil {
		h.fail(ctx, w, "invalid registration request", err)
		return
	}
	result, err := h.svc.RegisterCompany(ctx, reg)
	if err != nil {
		h.fail(ctx, w, "company registration failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCompanyDetailResponse(result))
}

// handleUpdateCompanyCapital sets capital and reallocates shares.
func (h *Handler) handleUpdateCompanyCapital(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid company id", err)
		return
	}
	var req CapitalUpdateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(ctx, w, "invalid capital update request", err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.fail(ctx, w, "invalid capital update request", err)
		return
	}
	result, err := h.svc.UpdateCompanyCapital(ctx, req.ToModel(id))
	if err != nil {
		h.fail(ctx, w, "capital update failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyDetailResponse(result))
}
