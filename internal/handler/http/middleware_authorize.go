package http

import (
	"net/http"

	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/security"
	"github.com/MKhiriev/go-social/internal/utils"
)

// authorize enforces the rule set on every request.
//
//	Permit         the request continues
//	Authenticated  401 with "WWW-Authenticate: Bearer" when no principal
//	Deny           403
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := h.rules.Decide(r.Method, r.URL.Path)

		switch decision.Access {
		case security.Permit:
			next.ServeHTTP(w, r)
			return

		case security.Deny:
			logger.FromRequest(r).Warn().
				Str("rule", decision.Rule.String()).
				Str("path", r.URL.Path).
				Msg("access denied")
			http.Error(w, ErrAccessDenied.Error(), http.StatusForbidden)
			return
		}

		if _, ok := utils.PrincipalFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		reason := utils.AuthFailureFromContext(r.Context())
		if reason == nil {
			reason = ErrEmptyAuthorizationHeader
		}

		log := logger.FromRequest(r).Warn().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			AnErr("reason", reason)
		if decision.Matched {
			log = log.Str("rule", decision.Rule.String())
		}
		log.Msg("unauthenticated request rejected")

		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
		http.Error(w, reason.Error(), http.StatusUnauthorized)
	})
}
