package httpapi

import (
	"encoding/json"
	"net/http"

	"empire-engine/internal/apperr"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// WriteAppErr maps domain error kinds onto HTTP statuses. The core itself
// knows nothing about HTTP; this is the only place the mapping lives.
func WriteAppErr(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		WriteError(w, r, http.StatusNotFound, "not_found", err.Error())
	case apperr.KindValidation:
		WriteError(w, r, http.StatusBadRequest, "validation", err.Error())
	case apperr.KindConfiguration:
		WriteError(w, r, http.StatusBadRequest, "configuration", err.Error())
	case apperr.KindStorage:
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
	default:
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
