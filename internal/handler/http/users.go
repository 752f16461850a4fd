package http

import (
	"encoding/json"
	"net/http"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/utils"
	"github.com/dbelyakov/go-market/models"
)

// register creates a new account. No authentication is required; the optional
// admin flag in the payload controls which scope set the account is seeded
// with. Duplicate usernames are rejected with 409 Conflict.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// listUsers returns one page of accounts. Admin scope required.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	skip, limit, err := getPaginationParams(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination parameters")
		respondError(w, err)
		return
	}

	userList, err := h.services.UserService.ListUsers(ctx, skip, limit)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, userList, http.StatusOK)
}

// getUser returns one account by id. Admin scope required.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	userID, err := getResourceID(r, "userID")
	if err != nil {
		log.Err(err).Msg("invalid user id")
		respondError(w, err)
		return
	}

	foundUser, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// deleteUser removes one account by id, cascading its carts and permission
// grants. Admin scope required.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	userID, err := getResourceID(r, "userID")
	if err != nil {
		log.Err(err).Msg("invalid user id")
		respondError(w, err)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteAllUsers clears the whole users collection. Admin scope required.
func (h *Handler) deleteAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	if err := h.services.UserService.DeleteAllUsers(ctx); err != nil {
		log.Err(err).Msg("user clearing failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getMe returns the calling user's own account.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	foundUser, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// updateMe applies a profile mutation to the calling user's own account.
func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

// deleteMe removes the calling user's own account, cascading its carts and
// permission grants. The bearer token keeps verifying until it expires, but
// the vanished subject no longer authenticates.
func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("account deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
