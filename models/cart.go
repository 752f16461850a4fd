package models

// Cart is a shopping cart owned by exactly one user. Items holds the ids of
// the products placed into the cart; the same product may appear repeatedly.
//
// Every cart operation is filtered by the owning user's id, so one account can
// never observe or mutate another account's cart.
type Cart struct {
	CartID int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Items  []int64 `json:"items"`
}

// TableName returns the name of the database table
// associated with the Cart model.
func (c Cart) TableName() string {
	return "carts"
}

// AddCartItemRequest is the payload for POST /users/me/carts/{id}/items.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

// CartList is the paginated response envelope for cart listings.
type CartList struct {
	Skip         uint64 `json:"skip"`
	Limit        uint64 `json:"limit"`
	TotalResults int64  `json:"total_results"`
	Carts        []Cart `json:"carts"`
}
