package port

import (
	"context"

	"github.com/stitchkart/storefront/internal/core/domain"
)

// Local state containers. Each is an explicit injected store,
// persisted as a single blob; mutators report persistence errors.

type CartStore interface {
	Add(domain.CartLine) error
	Remove(productID string, format domain.Format) error
	SetQuantity(productID string, format domain.Format, quantity int) error
	SetFormat(productID string, oldFormat, newFormat domain.Format) error
	Replace([]domain.CartLine) error
	Clear() error
	Lines() []domain.CartLine
	Total() float64
}

type WishlistStore interface {
	Add(domain.WishlistEntry) error
	Remove(productID string) error
	Clear() error
	Contains(productID string) bool
	Entries() []domain.WishlistEntry
}

type SessionStore interface {
	UserID() (string, bool)
	Session() domain.AuthSession
	SetSession(domain.AuthSession) error
	ClearSession() error
}

// Remote backend gateways.

type CatalogGateway interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchLatestProducts(context.Context) ([]domain.Product, error)
	FetchProductByID(ctx context.Context, productID string) (domain.Product, error)
	FetchSubCategories(ctx context.Context, category string) ([]string, error)
	FetchProductsBySubCategory(ctx context.Context, category, sub string) ([]domain.Product, error)
	FetchMachinery(context.Context) ([]domain.Machinery, error)
}

type CartGateway interface {
	FetchCartItems(ctx context.Context, userID string) ([]domain.CartLine, error)
	AddCartItems(ctx context.Context, userID string, lines []domain.CartLine) error
	UpdateCartItemFormat(ctx context.Context, cartItemID string, format domain.Format) error
	UpdateCartItemQuantity(ctx context.Context, cartItemID string, quantity int) error
	RemoveCartItem(ctx context.Context, cartItemID string, format domain.Format) error
}

type AuthGateway interface {
	Login(context.Context, domain.Credentials) (domain.AuthSession, error)
	ExchangeCode(ctx context.Context, code string) (domain.AuthSession, error)
}

type OrdersGateway interface {
	FetchOrders(ctx context.Context, userID string) ([]domain.Order, error)
	FetchDownloads(ctx context.Context, userID string) ([]domain.Download, error)
}

// External collaborators.

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, receipt string) (domain.PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

type EventEmitter interface {
	Emit(context.Context, domain.ClientEvent) error
}

// Core services as seen by the inbound HTTP surface.

type CartOperator interface {
	View(context.Context) ([]domain.CartLine, float64, error)
	AddProduct(ctx context.Context, p domain.Product, format domain.Format) error
	RemoveLine(ctx context.Context, line domain.CartLine) error
	ChangeFormat(ctx context.Context, line domain.CartLine, format domain.Format) error
	SetQuantity(ctx context.Context, productID string, format domain.Format, quantity int) error
}

type CatalogProvider interface {
	Home(context.Context) ([]domain.Product, error)
	Products(context.Context) ([]domain.Product, error)
	Product(ctx context.Context, productID string) (domain.Product, error)
	SubCategories(ctx context.Context, category string) ([]string, error)
	ProductsBySubCategory(ctx context.Context, category, sub string) ([]domain.Product, error)
	Machinery(context.Context) ([]domain.Machinery, error)
}

type WishlistOperator interface {
	Toggle(p domain.Product) (added bool, err error)
	Entries() []domain.WishlistEntry
	Clear() error
}

type Authenticator interface {
	Login(context.Context, domain.Credentials) error
	HandleCallback(ctx context.Context, code string) error
	Logout() error
	Session() domain.AuthSession
}

type OrdersProvider interface {
	Orders(context.Context) ([]domain.Order, error)
	Downloads(context.Context) ([]domain.Download, error)
}

type CheckoutOperator interface {
	Begin(context.Context) (domain.PaymentOrder, error)
	Complete(context.Context, domain.PaymentCallback) (redirect string, err error)
}
