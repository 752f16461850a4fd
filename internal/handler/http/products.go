package http

import (
	"encoding/json"
	"net/http"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/utils"
	"github.com/dbelyakov/go-market/models"
)

// listProducts returns one page of the catalog. Public endpoint: pagination,
// sorting and price filtering are controlled by query parameters.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := getProductQueryParams(r)
	if err != nil {
		log.Err(err).Msg("invalid product listing parameters")
		respondError(w, err)
		return
	}

	productList, err := h.services.ProductService.ListProducts(ctx, query)
	if err != nil {
		log.Err(err).Msg("product listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, productList, http.StatusOK)
}

// getProduct returns one catalog entry by id. Public endpoint.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := getResourceID(r, "productID")
	if err != nil {
		log.Err(err).Msg("invalid product id")
		respondError(w, err)
		return
	}

	product, err := h.services.ProductService.GetProduct(ctx, productID)
	if err != nil {
		log.Err(err).Int64("id", productID).Msg("product search failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

// createProduct adds a new catalog entry. Admin scope required.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	product, err := h.services.ProductService.CreateProduct(ctx, req)
	if err != nil {
		log.Err(err).Msg("product creation failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", product.ProductID).Msg("product created")

	utils.WriteJSON(w, product, http.StatusCreated)
}

// patchProduct applies a partial mutation to a catalog entry. Admin scope
// required. An empty patch returns the current record unchanged.
func (h *Handler) patchProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	productID, err := getResourceID(r, "productID")
	if err != nil {
		log.Err(err).Msg("invalid product id")
		respondError(w, err)
		return
	}

	var update models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	product, err := h.services.ProductService.PatchProduct(ctx, productID, update)
	if err != nil {
		log.Err(err).Int64("id", productID).Msg("product patch failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

// replaceProduct overwrites a catalog entry with a full new record. Admin
// scope required.
func (h *Handler) replaceProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	productID, err := getResourceID(r, "productID")
	if err != nil {
		log.Err(err).Msg("invalid product id")
		respondError(w, err)
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	product, err := h.services.ProductService.ReplaceProduct(ctx, productID, req)
	if err != nil {
		log.Err(err).Int64("id", productID).Msg("product replacement failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

// deleteProduct removes a catalog entry. Admin scope required. Item
// references in existing carts are left in place and simply dangle.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.getAuthorizedUserID(w, r, models.ScopeAdmin); !ok {
		return
	}

	productID, err := getResourceID(r, "productID")
	if err != nil {
		log.Err(err).Msg("invalid product id")
		respondError(w, err)
		return
	}

	if err := h.services.ProductService.DeleteProduct(ctx, productID); err != nil {
		log.Err(err).Int64("id", productID).Msg("product deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
