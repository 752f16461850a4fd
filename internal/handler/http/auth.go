package http

import (
	"net/http"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/service"
	"github.com/dbelyakov/go-market/internal/utils"
	"github.com/dbelyakov/go-market/models"
)

// token exchanges a form-encoded username/password pair for a signed bearer
// token. The response body follows the OAuth2 password-grant shape:
//
//	{"access_token": "<jwt>", "token_type": "bearer"}
//
// Bad credentials are rejected with 401 and a bearer challenge; the body does
// not say whether the username or the password was wrong.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		http.Error(w, "invalid form data was passed", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("login failed")
		respondError(w, err)
		return
	}

	log.Debug().Str("username", username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

// getAuthorizedUserID resolves the principal stored by the auth middleware
// and checks it against requiredScopes. On failure it writes the error
// response itself and reports false; handlers should simply return.
func (h *Handler) getAuthorizedUserID(w http.ResponseWriter, r *http.Request, requiredScopes ...string) (int64, bool) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal found in request context")
		respondError(w, service.ErrUnauthorized)
		return 0, false
	}

	userID, err := h.services.AuthService.Authorize(principal, requiredScopes...)
	if err != nil {
		log.Warn().Err(err).Int64("id", principal.UserID).Strs("required_scopes", requiredScopes).Msg("authorization failed")
		respondError(w, err)
		return 0, false
	}

	return userID, true
}
