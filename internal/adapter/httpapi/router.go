package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stitchkart/storefront/internal/adapter/backend"
	"github.com/stitchkart/storefront/internal/core/port"
	"github.com/stitchkart/storefront/internal/core/service"
	"github.com/stitchkart/storefront/pkg/toast"
)

type Deps struct {
	Catalog  port.CatalogProvider
	Cart     port.CartOperator
	Wishlist port.WishlistOperator
	Auth     port.Authenticator
	Orders   port.OrdersProvider
	Checkout port.CheckoutOperator
	Feed     *toast.Feed
}

// NewRouter builds the storefront routing surface: the page
// routes plus the cart, wishlist, auth and checkout intents.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	catalog := CatalogHandler{d.Catalog}
	cart := CartHandler{d.Cart}
	wishlist := WishlistHandler{d.Wishlist}
	auth := AuthHandler{d.Auth}
	orders := OrdersHandler{d.Orders}
	checkout := CheckoutHandler{d.Checkout}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/home", catalog.Home)
		r.Get("/products", catalog.Products)
		r.Get("/products/{id}", catalog.Product)
		r.Get("/categories/{category}/subcategories", catalog.SubCategories)
		r.Get("/categories/{category}/subcategories/{sub}", catalog.ProductsBySubCategory)
		r.Get("/machinery", catalog.Machinery)

		r.Get("/cart", cart.View)
		r.Post("/cart/items", cart.Add)
		r.Delete("/cart/items", cart.Remove)
		r.Put("/cart/items/quantity", cart.SetQuantity)
		r.Put("/cart/items/format", cart.ChangeFormat)

		r.Get("/wishlist", wishlist.List)
		r.Post("/wishlist", wishlist.Toggle)
		r.Delete("/wishlist", wishlist.Clear)

		r.Post("/auth/login", auth.Login)
		r.Get("/auth/callback", auth.Callback)
		r.Post("/auth/logout", auth.Logout)
		r.Get("/auth/session", auth.CurrentSession)

		r.Get("/orders", orders.Orders)
		r.Get("/downloads", orders.Downloads)

		r.Post("/checkout", checkout.Begin)
		r.Post("/checkout/callback", checkout.Callback)

		r.Get("/notifications", func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, toNoteViews(d.Feed.Active()))
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return AllowJSON(r)
}

func respond(w http.ResponseWriter, status int, v any) {
	const op = "httpapi.respond"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return false
	}
	return true
}

// respondErr maps core errors onto the storefront's status codes:
// missing auth is 401, a missing product 404, a bad request shape
// 400, and any backend transport failure 502.
func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		http.Error(w, "not authenticated", http.StatusUnauthorized)
	case errors.Is(err, backend.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrBadSignature),
		errors.Is(err, service.ErrLineNotPersisted):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, backend.ErrUnexpectedStatus):
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
