package models

// Product is a storefront catalog entry.
type Product struct {
	ProductID   int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// CreateProductRequest is the payload for POST /products and PUT
// /products/{id}. Description is optional.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ProductUpdate carries optional field mutations for PATCH /products/{id}.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// IsEmpty reports whether the update contains no mutations at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil
}

// Sorting fields accepted by the product listing endpoint.
const (
	SortByName  = "name"
	SortByPrice = "price"
)

// Sorting orders accepted by the product listing endpoint.
const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
)

// Price comparison operators accepted by the product listing endpoint.
const (
	PriceFilterGT  = "gt"
	PriceFilterLT  = "lt"
	PriceFilterGTE = "gte"
	PriceFilterLTE = "lte"
)

// PriceFilter restricts a product listing to prices matching Op against Value.
type PriceFilter struct {
	Op    string
	Value float64
}

// ProductQuery collects the validated listing parameters: pagination, an
// optional sort field + order pair and an optional price filter.
type ProductQuery struct {
	Skip  uint64
	Limit uint64

	// Sort and Order are either both set or both empty.
	Sort  string
	Order string

	// Filter is nil when no price filter was requested.
	Filter *PriceFilter
}

// ProductList is the paginated response envelope for product listings.
type ProductList struct {
	Skip         uint64    `json:"skip"`
	Limit        uint64    `json:"limit"`
	TotalResults int64     `json:"total_results"`
	Products     []Product `json:"products"`
}
