// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-market Authors

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dbelyakov/go-market/models"
)

// Pagination defaults applied when the client omits the parameters.
const (
	defaultSkip  uint64 = 0
	defaultLimit uint64 = 100
)

// getResourceID extracts the named chi URL parameter and parses it as a
// positive numeric id. A missing or non-numeric value yields
// [ErrInvalidResourceID].
func getResourceID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidResourceID, name, raw)
	}

	return id, nil
}

// getPaginationParams parses the optional `skip` and `limit` query parameters,
// falling back to the defaults when a parameter is absent. Negative or
// non-numeric values yield [ErrInvalidQueryParameters]. Both values are capped
// at 63 bits so they stay representable in the OFFSET/LIMIT clauses.
func getPaginationParams(r *http.Request) (skip, limit uint64, err error) {
	skip, limit = defaultSkip, defaultLimit
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		skip, err = strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: skip=%q", ErrInvalidQueryParameters, raw)
		}
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: limit=%q", ErrInvalidQueryParameters, raw)
		}
	}

	return skip, limit, nil
}

// getProductQueryParams parses and validates the product listing parameters.
//
// Sorting and price filtering are pair-wise parameters: `sort` requires
// `order` and vice versa, `price_filter_op` requires `price_filter_value` and
// vice versa. Either half of either pair alone, or a value outside the
// accepted enums, yields [ErrInvalidQueryParameters].
func getProductQueryParams(r *http.Request) (models.ProductQuery, error) {
	skip, limit, err := getPaginationParams(r)
	if err != nil {
		return models.ProductQuery{}, err
	}

	productQuery := models.ProductQuery{
		Skip:  skip,
		Limit: limit,
	}
	query := r.URL.Query()

	sort, order := query.Get("sort"), query.Get("order")
	if (sort == "") != (order == "") {
		return models.ProductQuery{}, fmt.Errorf("%w: `sort` and `order` must be passed together", ErrInvalidQueryParameters)
	}
	if sort != "" {
		if sort != models.SortByName && sort != models.SortByPrice {
			return models.ProductQuery{}, fmt.Errorf("%w: sort=%q", ErrInvalidQueryParameters, sort)
		}
		if order != models.OrderAscending && order != models.OrderDescending {
			return models.ProductQuery{}, fmt.Errorf("%w: order=%q", ErrInvalidQueryParameters, order)
		}
		productQuery.Sort, productQuery.Order = sort, order
	}

	filterOp, filterValue := query.Get("price_filter_op"), query.Get("price_filter_value")
	if (filterOp == "") != (filterValue == "") {
		return models.ProductQuery{}, fmt.Errorf("%w: `price_filter_op` and `price_filter_value` must be passed together", ErrInvalidQueryParameters)
	}
	if filterOp != "" {
		switch filterOp {
		case models.PriceFilterGT, models.PriceFilterLT, models.PriceFilterGTE, models.PriceFilterLTE:
		default:
			return models.ProductQuery{}, fmt.Errorf("%w: price_filter_op=%q", ErrInvalidQueryParameters, filterOp)
		}

		value, err := strconv.ParseFloat(filterValue, 64)
		if err != nil {
			return models.ProductQuery{}, fmt.Errorf("%w: price_filter_value=%q", ErrInvalidQueryParameters, filterValue)
		}

		productQuery.Filter = &models.PriceFilter{Op: filterOp, Value: value}
	}

	return productQuery, nil
}
