package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	StatusUC *usecase.UpdateLeadStatusUseCase
	DeleteUC *usecase.DeleteLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	statusUC *usecase.UpdateLeadStatusUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		StatusUC: statusUC,
		DeleteUC: deleteUC,
		ListUC:   listUC,
	}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON: "+err.Error())
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		if de, ok := usecase.AsDomainError(err); ok && de.Code == usecase.CodeDuplicate {
			middleware.RecordDuplicateRejected()
		}
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated(string(lead.Source))
	writeData(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.ListUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := parseLeadFilters(q)
	sortOpt := usecase.LeadSortOptions{Field: q.Get("sortField"), Order: q.Get("sortOrder")}
	page := parseInt(q.Get("page"), 1)
	limit := parseInt(q.Get("limit"), 20)

	result, err := h.ListUC.Execute(r.Context(), filters, sortOpt, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success:    true,
		Data:       result.Data,
		Pagination: &result.Pagination,
	})
}

func (h *LeadHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListUC.ByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, leads)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON: "+err.Error())
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		if de, ok := usecase.AsDomainError(err); ok && de.Code == usecase.CodeDuplicate {
			middleware.RecordDuplicateRejected()
		}
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, lead)
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON: "+err.Error())
		return
	}

	lead, err := h.StatusUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Status, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordStatusTransition(req.Status)
	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.BulkStatusUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON: "+err.Error())
		return
	}

	if err := h.StatusUC.ExecuteBulk(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordStatusTransition(input.Status)
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// Delete soft-deletes by default; ?hard=true removes the record for good.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var err error
	if r.URL.Query().Get("hard") == "true" {
		err = h.DeleteUC.HardDelete(r.Context(), id)
	} else {
		err = h.DeleteUC.SoftDelete(r.Context(), id)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

func (h *LeadHandler) Restore(w http.ResponseWriter, r *http.Request) {
	lead, err := h.DeleteUC.Restore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.ListUC.Tags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, tags)
}

func (h *LeadHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.ListUC.Cities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, cities)
}

// parseLeadFilters builds the filter set from query parameters.
// Unparseable values leave the corresponding filter unset.
func parseLeadFilters(q url.Values) usecase.LeadFilters {
	filters := usecase.LeadFilters{
		Category: q.Get("category"),
		City:     q.Get("city"),
		Search:   q.Get("search"),
	}

	if s := q.Get("status"); s != "" {
		if status, ok := entity.ParseLeadStatus(s); ok {
			filters.Status = status
		}
	}
	if s := q.Get("source"); s != "" {
		if source, ok := entity.ParseLeadSource(s); ok {
			filters.Source = source
		}
	}
	if s := q.Get("priority"); s != "" {
		if priority, ok := entity.ParsePriority(s); ok {
			filters.Priority = priority
		}
	}
	if s := q.Get("minRating"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			filters.MinRating = &v
		}
	}
	if s := q.Get("maxRating"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			filters.MaxRating = &v
		}
	}
	if s := q.Get("tags"); s != "" {
		for _, tag := range strings.Split(s, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Tags = append(filters.Tags, tag)
			}
		}
	}
	if s := q.Get("isDeleted"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			filters.IsDeleted = &v
		}
	}

	return filters
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
