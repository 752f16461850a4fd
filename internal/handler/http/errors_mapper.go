package http

import (
	"errors"
	"net/http"

	"github.com/dbelyakov/go-market/internal/service"
	"github.com/dbelyakov/go-market/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrItemNotInCart:       http.StatusBadRequest,

	ErrInvalidResourceID:      http.StatusBadRequest,
	ErrInvalidQueryParameters: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrProductNotFound:       http.StatusNotFound,
	store.ErrCartNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError resolves err to its HTTP status and client-facing message.
// Wrapped errors are matched with errors.Is; anything outside the map is an
// internal error and the message stays generic so internals never leak.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// respondError translates err into its HTTP status and writes a plain-text
// response. Every 401 carries the bearer challenge header so clients know to
// re-authenticate; the body never distinguishes the unauthorized causes.
func respondError(w http.ResponseWriter, err error) {
	status, message := statusFromError(err)

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	http.Error(w, message, status)
}
