package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
)

const maxDocumentSize = 1 << 20

// filePath returns the document path of a files route, e.g.
// "/shop-sync/list_abc.json" for "/api/files/shop-sync/list_abc.json".
// The decoded URL path is used so escaped segments arrive unescaped.
func filePath(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, filesRoute)
}

func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoOwnerInContext)
		return
	}

	file, err := h.services.FileService.GetFile(r.Context(), owner, filePath(r))
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getFile").Msg("file read rejected")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, file, http.StatusOK)
}

func (h *Handler) putFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoOwnerInContext)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(w, ErrDocumentTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.putFile").Msg("error reading request body")
		writeError(w, http.StatusBadRequest, "error reading request body")
		return
	}

	stored, err := h.services.FileService.PutFile(r.Context(), owner, filePath(r), data)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.putFile").Msg("file write rejected")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoOwnerInContext)
		return
	}

	if err := h.services.FileService.DeleteFile(r.Context(), owner, filePath(r)); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.deleteFile").Msg("file delete rejected")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
