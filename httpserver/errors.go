package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solenne/gift-registry-backend/interfaces"
)

// ErrorKind is the machine-readable error class carried in every non-200
// response.
type ErrorKind string

const (
	KindUnauthorized  ErrorKind = "unauthorized"
	KindBadRequest    ErrorKind = "bad_request"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindMisconfigured ErrorKind = "server_misconfigured"
	KindInternal      ErrorKind = "internal_error"
)

type errorBody struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(w http.ResponseWriter, status int, kind ErrorKind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: errorBody{Kind: kind, Message: message}})
}

// storeErrorStatus maps a classified store error onto an HTTP status and
// error kind. Transient errors reaching this point have already exhausted
// their retries and are reported as internal.
func storeErrorStatus(err error) (int, ErrorKind, string) {
	switch {
	case errors.Is(err, interfaces.ErrOutOfRange):
		return http.StatusNotFound, KindNotFound, "no such item"
	case errors.Is(err, interfaces.ErrAlreadyPurchased):
		return http.StatusConflict, KindConflict, "item is already purchased"
	case errors.Is(err, interfaces.ErrItemDeleted), errors.Is(err, interfaces.ErrAlreadyDeleted):
		return http.StatusConflict, KindConflict, "item has been removed from the registry"
	case errors.Is(err, interfaces.ErrEmptyName):
		return http.StatusBadRequest, KindBadRequest, "purchaser name must not be empty"
	case errors.Is(err, interfaces.ErrTransient):
		return http.StatusInternalServerError, KindInternal, "registry store is temporarily unavailable"
	default:
		return http.StatusInternalServerError, KindInternal, "registry store request failed"
	}
}
