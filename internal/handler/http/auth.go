package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/utils"
	"github.com/MKhiriev/go-social/models"
)

const (
	msgRegisterSuccess = "Register Success"
	msgLoginSuccess    = "Login Success"

	maxAuthBodyBytes = 1 << 20
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	h.respondWithToken(w, r, registeredUser, msgRegisterSuccess, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		writeError(w, r, err, "user sign in failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully signed in")

	h.respondWithToken(w, r, foundUser, msgLoginSuccess, http.StatusOK)
}

// decodeBody reads at most maxAuthBodyBytes of JSON into dst. On failure it
// writes 413 or 400 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxAuthBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, errBodyTooLarge.Error(), http.StatusRequestEntityTooLarge)
		return false
	}
	http.Error(w, errInvalidJSON.Error(), http.StatusBadRequest)
	return false
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, message string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	if _, err = utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing auth response failed")
	}
}
