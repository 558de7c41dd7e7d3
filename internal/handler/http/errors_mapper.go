package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/security"
	"github.com/MKhiriev/go-social/internal/service"
	"github.com/MKhiriev/go-social/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrTokenIsInvalid:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	security.ErrPasswordTooLong: http.StatusBadRequest,

	store.ErrEmailAlreadyUsed: http.StatusConflict,
	store.ErrUserNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

// statusFromError maps the first known sentinel in err's chain to a status.
// Unknown errors map to 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Client errors carry
// the sentinel text, server errors only the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)

	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, publicMessage(err), status)
}

// publicMessage returns the text of the most specific known sentinel in err.
func publicMessage(err error) string {
	for _, target := range []error{
		store.ErrEmailAlreadyUsed,
		store.ErrUserNotFound,
		service.ErrInvalidCredentials,
		service.ErrTokenIsExpired,
		service.ErrTokenIsInvalid,
		security.ErrPasswordTooLong,
		service.ErrInvalidDataProvided,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
