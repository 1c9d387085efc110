package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidPath:             http.StatusBadRequest,
	service.ErrInvalidDocument:         http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrFileNotFound:            http.StatusNotFound,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrNoOwnerInContext: http.StatusUnauthorized,
	ErrDocumentTooLarge: http.StatusRequestEntityTooLarge,

	store.ErrTemporaryFailure: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error body. Internal errors are reported with the
// generic status text only.
func writeError(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, statusFromError(err), err.Error())
}
