package handler

import (
	"net/http"

	"corpreg/internal/registry/models"
	"corpreg/internal/registry/service"
	"corpreg/pkg/platform/httputil"
)

func (h *Handler) decodeShareholding(r *http.Request) (service.ShareholdingInput, error) {
	var req ShareholdingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		return service.ShareholdingInput{}, err
	}
	if err := req.Validate(); err != nil {
		return service.ShareholdingInput{}, err
	}
	return req.Input(), nil
}

func (h *Handler) handleCreateShareholding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in, err := h.decodeShareholding(r)
	if err != nil {
		h.fail(ctx, w, "invalid create shareholding request", err)
		return
	}
	holding, err := h.svc.CreateShareholding(ctx, in)
	if err != nil {
		h.fail(ctx, w, "failed to create shareholding", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toShareholdingResponse(holding))
}

func (h *Handler) handleListShareholdings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID, err := queryID(r, "company_id")
	if err != nil {
		h.fail(ctx, w, "invalid shareholding filter", err)
		return
	}
	personID, err := queryID(r, "person_id")
	if err != nil {
		h.fail(ctx, w, "invalid shareholding filter", err)
		return
	}
	holdings, err := h.svc.ListShareholdings(ctx, models.ShareholdingFilter{
		CompanyID: companyID,
		PersonID:  personID,
		Page:      pageFromQuery(r),
	})
	if err != nil {
		h.fail(ctx, w, "failed to list shareholdings", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toShareholdingResponses(holdings))
}

func (h *Handler) handleGetShareholding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid shareholding id", err)
		return
	}
	result, err := h.svc.GetShareholding(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to get shareholding", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ShareholdingDetailResponse{
		ShareholdingResponse: toShareholdingResponse(result.Shareholding),
		Company:              toCompanyResponse(result.Company),
		Person:               toPersonResponse(result.Person),
	})
}

func (h *Handler) handleUpdateShareholding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid shareholding id", err)
		return
	}
	in, err := h.decodeShareholding(r)
	if err != nil {
		h.fail(ctx, w, "invalid update shareholding request", err)
		return
	}
	holding, err := h.svc.UpdateShareholding(ctx, id, in)
	if err != nil {
		h.fail(ctx, w, "failed to update shareholding", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toShareholdingResponse(holding))
}

func (h *Handler) handleDeleteShareholding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid shareholding id", err)
		return
	}
	if err := h.svc.DeleteShareholding(ctx, id); err != nil {
		h.fail(ctx, w, "failed to delete shareholding", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
