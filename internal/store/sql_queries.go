package store

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, username, password_hash, created_at
    FROM users
    ORDER BY user_id
    OFFSET $1 LIMIT $2;`

	countUsers = `SELECT COUNT(*) FROM users;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	deleteAllUsers = `DELETE FROM users;`

	findScopesByUserID = `SELECT scope
    FROM permissions
    WHERE user_id = $1;`

	deletePermissionsByUserID = `DELETE FROM permissions
    WHERE user_id = $1;`

	createCart = `INSERT INTO carts (user_id)
    VALUES ($1)
    RETURNING cart_id, user_id;`

	findCart = `SELECT cart_id, user_id
    FROM carts
    WHERE cart_id = $1 AND user_id = $2;`

	findCartItems = `SELECT product_id
    FROM cart_items
    WHERE cart_id = $1
    ORDER BY cart_item_id;`

	listCarts = `SELECT cart_id, user_id
    FROM carts
    WHERE user_id = $1
    ORDER BY cart_id
    OFFSET $2 LIMIT $3;`

	countCarts = `SELECT COUNT(*) FROM carts WHERE user_id = $1;`

	// addCartItem constrains the insert to the owning user so the ownership
	// filter lives in the statement itself; zero affected rows means the cart
	// does not exist for that user.
	addCartItem = `INSERT INTO cart_items (cart_id, product_id)
    SELECT c.cart_id, $3
    FROM carts c
    WHERE c.cart_id = $1 AND c.user_id = $2;`

	removeCartItems = `DELETE FROM cart_items ci
    USING carts c
    WHERE ci.cart_id = c.cart_id
      AND c.cart_id = $1 AND c.user_id = $2
      AND ci.product_id = $3;`

	clearCartItems = `DELETE FROM cart_items ci
    USING carts c
    WHERE ci.cart_id = c.cart_id
      AND c.cart_id = $1 AND c.user_id = $2;`

	deleteCart = `DELETE FROM carts
    WHERE cart_id = $1 AND user_id = $2;`

	deleteCartsByUserID = `DELETE FROM carts
    WHERE user_id = $1;`

	createProduct = `INSERT INTO products (name, description, price)
    VALUES ($1, $2, $3)
    RETURNING product_id, name, description, price;`

	findProductByID = `SELECT product_id, name, description, price
    FROM products
    WHERE product_id = $1;`

	replaceProduct = `UPDATE products
    SET name = $2, description = $3, price = $4
    WHERE product_id = $1;`

	deleteProduct = `DELETE FROM products
    WHERE product_id = $1;`
)
