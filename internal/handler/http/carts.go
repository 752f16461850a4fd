package http

import (
	"encoding/json"
	"net/http"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/utils"
	"github.com/dbelyakov/go-market/models"
)

// Cart handlers. All of them resolve the owner id from the authenticated
// principal, never from the request, so a caller can only ever see or touch
// their own carts: somebody else's cart id behaves exactly like a missing one.

// createCart opens a new empty cart for the calling user.
func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	cart, err := h.services.CartService.CreateCart(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("cart creation failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("cart_id", cart.CartID).Int64("id", userID).Msg("cart created")

	utils.WriteJSON(w, cart, http.StatusCreated)
}

// listCarts returns one page of the calling user's carts.
func (h *Handler) listCarts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	skip, limit, err := getPaginationParams(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination parameters")
		respondError(w, err)
		return
	}

	cartList, err := h.services.CartService.ListCarts(ctx, userID, skip, limit)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("cart listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, cartList, http.StatusOK)
}

// getCart returns one of the calling user's carts by id.
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	cartID, err := getResourceID(r, "cartID")
	if err != nil {
		log.Err(err).Msg("invalid cart id")
		respondError(w, err)
		return
	}

	cart, err := h.services.CartService.GetCart(ctx, userID, cartID)
	if err != nil {
		log.Err(err).Int64("cart_id", cartID).Msg("cart search failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}

// deleteCart removes one of the calling user's carts together with its items.
func (h *Handler) deleteCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	cartID, err := getResourceID(r, "cartID")
	if err != nil {
		log.Err(err).Msg("invalid cart id")
		respondError(w, err)
		return
	}

	if err := h.services.CartService.DeleteCart(ctx, userID, cartID); err != nil {
		log.Err(err).Int64("cart_id", cartID).Msg("cart deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// addCartItem puts a product into one of the calling user's carts and returns
// the updated cart. A product id that does not exist in the catalog is 404.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	cartID, err := getResourceID(r, "cartID")
	if err != nil {
		log.Err(err).Msg("invalid cart id")
		respondError(w, err)
		return
	}

	var req models.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cart, err := h.services.CartService.AddItem(ctx, userID, cartID, req.ProductID)
	if err != nil {
		log.Err(err).Int64("cart_id", cartID).Int64("product_id", req.ProductID).Msg("cart item addition failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}

// removeCartItem takes one occurrence of a product out of one of the calling
// user's carts and returns the updated cart. A product that is not in the
// cart is a 400, not a 404: the resource exists, the request is wrong.
func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	cartID, err := getResourceID(r, "cartID")
	if err != nil {
		log.Err(err).Msg("invalid cart id")
		respondError(w, err)
		return
	}

	productID, err := getResourceID(r, "productID")
	if err != nil {
		log.Err(err).Msg("invalid product id")
		respondError(w, err)
		return
	}

	cart, err := h.services.CartService.RemoveItem(ctx, userID, cartID, productID)
	if err != nil {
		log.Err(err).Int64("cart_id", cartID).Int64("product_id", productID).Msg("cart item removal failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}

// clearCart empties one of the calling user's carts and returns it.
func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.getAuthorizedUserID(w, r, models.ScopeMe)
	if !ok {
		return
	}

	cartID, err := getResourceID(r, "cartID")
	if err != nil {
		log.Err(err).Msg("invalid cart id")
		respondError(w, err)
		return
	}

	cart, err := h.services.CartService.ClearCart(ctx, userID, cartID)
	if err != nil {
		log.Err(err).Int64("cart_id", cartID).Msg("cart clearing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}
