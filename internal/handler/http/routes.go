package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/token", h.token)
		r.Post("/users", h.register)
		r.Get("/products", h.listProducts)
		r.Get("/products/{productID}", h.getProduct)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Delete("/users", h.deleteAllUsers)
		r.Get("/users/me", h.getMe)
		r.Patch("/users/me", h.updateMe)
		r.Delete("/users/me", h.deleteMe)
		r.Get("/users/{userID}", h.getUser)
		r.Delete("/users/{userID}", h.deleteUser)

		r.Post("/products", h.createProduct)
		r.Patch("/products/{productID}", h.patchProduct)
		r.Put("/products/{productID}", h.replaceProduct)
		r.Delete("/products/{productID}", h.deleteProduct)

		r.Route("/users/me/carts", func(r chi.Router) {
			r.Post("/", h.createCart)
			r.Get("/", h.listCarts)
			r.Get("/{cartID}", h.getCart)
			r.Delete("/{cartID}", h.deleteCart)
			r.Post("/{cartID}/items", h.addCartItem)
			r.Delete("/{cartID}/items", h.clearCart)
			r.Delete("/{cartID}/items/{productID}", h.removeCartItem)
		})
	})

	return router
}
