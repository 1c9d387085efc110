package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const filesRoute = "/api/files"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(filesRoute+"/*", h.getFile)
		r.Put(filesRoute+"/*", h.putFile)
		r.Delete(filesRoute+"/*", h.deleteFile)
	})

	// An unsupported method is answered like an unknown route so the route
	// set is not disclosed.
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
