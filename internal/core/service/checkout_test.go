package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stitchkart/storefront/internal/adapter/localstore"
	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
	"github.com/stitchkart/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

type MockPaymentGateway struct {
	mock.Mock
}

func (g *MockPaymentGateway) CreateOrder(
	ctx context.Context, amount float64, receipt string,
) (domain.PaymentOrder, error) {
	args := g.Called(ctx, amount, receipt)
	order, _ := args.Get(0).(domain.PaymentOrder)
	return order, args.Error(1)
}

func (g *MockPaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := g.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

type checkoutFixture struct {
	cart     port.CartStore
	gateway  *MockCartGateway
	payment  *MockPaymentGateway
	notifier *MockNotifier
	events   *MockEventEmitter
	svc      *service.CheckoutService
}

func newCheckoutFixture(t *testing.T, userID string) checkoutFixture {
	t.Helper()

	db, err := localstore.OpenStorage(storage.NewMemStorage())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	f := checkoutFixture{
		cart:     localstore.NewCartStore(db),
		gateway:  new(MockCartGateway),
		payment:  new(MockPaymentGateway),
		notifier: new(MockNotifier),
		events:   new(MockEventEmitter),
	}
	f.events.On("Emit", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.svc = service.NewCheckoutService(
		f.cart, stubSession{userID: userID}, f.gateway,
		f.payment, f.notifier, f.events,
	)
	return f
}

func TestCheckoutBegin(t *testing.T) {
	t.Run("GuestIsToldToLogin", func(t *testing.T) {
		f := newCheckoutFixture(t, "")
		f.notifier.On("Info", "Please login to proceed with checkout").Once()

		_, err := f.svc.Begin(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotAuthenticated)
		f.notifier.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		f := newCheckoutFixture(t, "u1")

		_, err := f.svc.Begin(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("CreatesOrderForCartTotal", func(t *testing.T) {
		f := newCheckoutFixture(t, "u1")
		require.NoError(t, f.cart.Add(serverLine("ci-1", "p1", domain.FormatDST, 2)))

		f.payment.On(
			"CreateOrder", mock.Anything, 799.0*2,
			mock.MatchedBy(func(receipt string) bool {
				return len(receipt) > len("order_")
			}),
		).Return(domain.PaymentOrder{
			OrderID: "o1", Amount: 799 * 2, Currency: "INR",
		}, nil).Once()

		order, err := f.svc.Begin(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "o1", order.OrderID)
		f.payment.AssertExpectations(t)
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		f := newCheckoutFixture(t, "u1")
		require.NoError(t, f.cart.Add(serverLine("ci-1", "p1", domain.FormatDST, 1)))

		f.payment.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).
			Return(domain.PaymentOrder{}, errors.New("gateway down")).Once()
		f.notifier.On("Error", "Failed to start checkout").Once()

		_, err := f.svc.Begin(t.Context())
		require.Error(t, err)
		f.notifier.AssertExpectations(t)
	})
}

func TestCheckoutComplete(t *testing.T) {
	cb := domain.PaymentCallback{OrderID: "o1", PaymentID: "pay1", Signature: "sig"}

	t.Run("BadSignature", func(t *testing.T) {
		f := newCheckoutFixture(t, "u1")
		require.NoError(t, f.cart.Add(serverLine("ci-1", "p1", domain.FormatDST, 1)))

		f.payment.On("VerifySignature", "o1", "pay1", "sig").Return(false).Once()
		f.notifier.On("Error", "Payment verification failed").Once()

		_, err := f.svc.Complete(t.Context(), cb)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrBadSignature)

		assert.NotEmpty(t, f.cart.Lines(), "cart must survive a failed verification")
	})

	t.Run("ClearsBothCartsAndRedirects", func(t *testing.T) {
		f := newCheckoutFixture(t, "u1")
		require.NoError(t, f.cart.Add(serverLine("ci-1", "p1", domain.FormatDST, 1)))
		require.NoError(t, f.cart.Add(serverLine("ci-2", "p2", domain.FormatJEF, 2)))

		f.payment.On("VerifySignature", "o1", "pay1", "sig").Return(true).Once()
		f.gateway.On("RemoveCartItem", mock.Anything, "ci-1", domain.FormatDST).
			Return(nil).Once()
		f.gateway.On("RemoveCartItem", mock.Anything, "ci-2", domain.FormatJEF).
			Return(nil).Once()
		f.notifier.On("Success", "Order placed successfully!").Once()

		redirect, err := f.svc.Complete(t.Context(), cb)
		require.NoError(t, err)
		assert.Equal(t, "/orders", redirect)
		assert.Empty(t, f.cart.Lines())

		f.gateway.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})

	t.Run("ServerClearFailureStillClearsLocal", func(t *testing.T) {
		f := newCheckoutFixture(t, "u1")
		require.NoError(t, f.cart.Add(serverLine("ci-1", "p1", domain.FormatDST, 1)))

		f.payment.On("VerifySignature", "o1", "pay1", "sig").Return(true).Once()
		f.gateway.On("RemoveCartItem", mock.Anything, "ci-1", domain.FormatDST).
			Return(errors.New("backend down")).Once()
		f.notifier.On("Success", "Order placed successfully!").Once()

		redirect, err := f.svc.Complete(t.Context(), cb)
		require.NoError(t, err)
		assert.Equal(t, "/orders", redirect)
		assert.Empty(t, f.cart.Lines())
	})
}
