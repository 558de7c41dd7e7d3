package http

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The middleware order matters: CORS answers
// preflights before authentication runs, and authorization is decided on the
// raw request path before routing so unknown API paths are still protected.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withCORS())
	router.Use(h.authenticate)
	router.Use(h.authorize)

	router.Get("/healthz", h.healthz)

	auth := strings.TrimRight(h.prefixes.AuthPrefix, "/")
	router.Post(auth+"/signup", h.signUp)
	router.Post(auth+"/signin", h.signIn)

	api := strings.TrimRight(h.prefixes.APIPrefix, "/")
	router.Get(api+"/users/profile", h.profile)
	router.Get(api+"/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
