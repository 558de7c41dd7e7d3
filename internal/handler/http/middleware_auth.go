package http

import (
	"net/http"

	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/utils"
)

// authenticate resolves the bearer token, if any, into a principal.
//
// It never rejects a request on its own: a missing header leaves the request
// anonymous, and a malformed, expired or forged token leaves it anonymous
// with the reason recorded via [utils.WithAuthFailure]. Whether anonymous
// access is acceptable is decided by [Handler.authorize], so sign-in keeps
// working for a browser still holding a stale token.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring malformed Authorization header")
			next.ServeHTTP(w, r.WithContext(utils.WithAuthFailure(ctx, ErrInvalidAuthorizationHeader)))
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			next.ServeHTTP(w, r.WithContext(utils.WithAuthFailure(ctx, err)))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, token.Principal)))
	})
}
