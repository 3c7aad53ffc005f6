package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type apiResponse struct {
	Success    bool                      `json:"success"`
	Data       any                       `json:"data,omitempty"`
	Pagination *usecase.Pagination       `json:"pagination,omitempty"`
	Error      string                    `json:"error,omitempty"`
	Fields     []usecase.ValidationError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

// writeError maps the domain error codes onto HTTP statuses. Anything that
// is not a DomainError is an unclassified storage/transport failure.
func writeError(w http.ResponseWriter, err error) {
	de, ok := usecase.AsDomainError(err)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: err.Error()})
		return
	}

	status := http.StatusInternalServerError
	switch de.Code {
	case usecase.CodeValidation:
		status = http.StatusBadRequest
	case usecase.CodeNotFound:
		status = http.StatusNotFound
	case usecase.CodeDuplicate:
		status = http.StatusConflict
	}

	writeJSON(w, status, apiResponse{Success: false, Error: de.Message, Fields: de.Fields})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: message})
}
