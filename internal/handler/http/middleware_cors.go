package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS applies the configured cross-origin policy. Preflight requests
// (OPTIONS with Access-Control-Request-Method) are answered here and never
// reach authentication. Requests from origins outside the allow-list are
// served without Access-Control-Allow-Origin, leaving enforcement to the
// browser.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   h.cors.AllowedOrigins,
		AllowedMethods:   h.cors.AllowedMethods,
		AllowedHeaders:   h.cors.AllowedHeaders,
		ExposedHeaders:   h.cors.ExposedHeaders,
		AllowCredentials: h.cors.Credentials(),
		MaxAge:           h.cors.MaxAge,
	}).Handler
}
