package http

import (
	"net/http"

	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/utils"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
		http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.Profile(r.Context(), principal.Email)
	if err != nil {
		writeError(w, r, err, "profile lookup failed")
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing profile failed")
	}
}
