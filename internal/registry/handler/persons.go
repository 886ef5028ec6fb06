package handler

import (
	"net/http"
	"strings"

	"corpreg/internal/registry/models"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/platform/httputil"
)

func (h *Handler) decodePerson(r *http.Request) (models.PersonDetails, error) {
	var req PersonRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req.Details(), nil
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	details, err := h.decodePerson(r)
	if err != nil {
		h.fail(ctx, w, "invalid create person request", err)
		return
	}
	person, err := h.svc.CreatePerson(ctx, details)
	if err != nil {
		h.fail(ctx, w, "failed to create person", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toPersonResponse(person))
}

func (h *Handler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := models.PersonFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Page:   pageFromQuery(r),
	}
	if raw := r.URL.Query().Get("type"); raw != "" {
		kind, err := models.ParsePersonKind(raw)
		if err != nil {
			h.fail(ctx, w, "invalid person type filter", dErrors.New(dErrors.CodeBadRequest, err.Error()))
			return
		}
		filter.Kind = kind
	}
	persons, err := h.svc.ListPersons(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "failed to list persons", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPersonResponses(persons))
}

func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid person id", err)
		return
	}
	result, err := h.svc.GetPerson(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to get person", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PersonDetailResponse{
		PersonResponse: toPersonResponse(result.Person),
		Shareholdings:  toShareholdingResponses(result.Shareholdings),
	})
}

func (h *Handler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid person id", err)
		return
	}
	details, err := h.decodePerson(r)
	if err != nil {
		h.fail(ctx, w, "invalid update person request", err)
		return
	}
	person, err := h.svc.UpdatePerson(ctx, id, details)
	if err != nil {
		h.fail(ctx, w, "failed to update person", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(person))
}

func (h *Handler) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "invalid person id", err)
		return
	}
	if err := h.svc.DeletePerson(ctx, id); err != nil {
		h.fail(ctx, w, "failed to delete person", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
