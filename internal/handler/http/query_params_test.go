package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbelyakov/go-market/models"
)

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantSkip  uint64
		wantLimit uint64
		wantErr   bool
	}{
		{"defaults", "/products", 0, 100, false},
		{"explicit values", "/products?skip=20&limit=10", 20, 10, false},
		{"skip only", "/products?skip=5", 5, 100, false},
		{"limit only", "/products?limit=7", 0, 7, false},
		{"zero limit allowed", "/products?limit=0", 0, 0, false},
		{"negative skip", "/products?skip=-1", 0, 0, true},
		{"non-numeric limit", "/products?limit=ten", 0, 0, true},
		{"limit above int64 range", "/products?limit=9223372036854775808", 0, 0, true},
		{"skip above int64 range", "/products?skip=9223372036854775808", 0, 0, true},
		{"limit at int64 max", "/products?limit=9223372036854775807", 0, 9223372036854775807, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			skip, limit, err := getPaginationParams(req)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQueryParameters)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestGetProductQueryParams_SortOrderPair(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantSort  string
		wantOrder string
		wantErr   bool
	}{
		{"no sorting", "/products", "", "", false},
		{"sort by name ascending", "/products?sort=name&order=asc", "name", "asc", false},
		{"sort by price descending", "/products?sort=price&order=desc", "price", "desc", false},
		{"sort without order", "/products?sort=name", "", "", true},
		{"order without sort", "/products?order=asc", "", "", true},
		{"unknown sort field", "/products?sort=weight&order=asc", "", "", true},
		{"unknown order", "/products?sort=name&order=sideways", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			query, err := getProductQueryParams(req)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQueryParameters)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSort, query.Sort)
			assert.Equal(t, tt.wantOrder, query.Order)
		})
	}
}

func TestGetProductQueryParams_PriceFilterPair(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOp    string
		wantValue float64
		wantNil   bool
		wantErr   bool
	}{
		{"no filter", "/products", "", 0, true, false},
		{"greater than", "/products?price_filter_op=gt&price_filter_value=10.5", models.PriceFilterGT, 10.5, false, false},
		{"less than or equal", "/products?price_filter_op=lte&price_filter_value=99", models.PriceFilterLTE, 99, false, false},
		{"operator without value", "/products?price_filter_op=gt", "", 0, true, true},
		{"value without operator", "/products?price_filter_value=10", "", 0, true, true},
		{"unknown operator", "/products?price_filter_op=eq&price_filter_value=10", "", 0, true, true},
		{"non-numeric value", "/products?price_filter_op=gt&price_filter_value=cheap", "", 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			query, err := getProductQueryParams(req)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQueryParameters)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, query.Filter)
				return
			}
			require.NotNil(t, query.Filter)
			assert.Equal(t, tt.wantOp, query.Filter.Op)
			assert.Equal(t, tt.wantValue, query.Filter.Value)
		})
	}
}
