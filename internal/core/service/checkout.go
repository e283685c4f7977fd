package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.CheckoutOperator = (*CheckoutService)(nil)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrBadSignature = errors.New("invalid payment signature")
)

const ordersRedirect = "/orders"

// CheckoutService registers a payment order with the external
// collaborator and consumes its success callback: on a verified
// callback the server cart is cleared best-effort, the local cart
// is cleared, and the caller is redirected to the orders page.
type CheckoutService struct {
	cart     port.CartStore
	session  port.SessionStore
	gateway  port.CartGateway
	payment  port.PaymentGateway
	notifier port.Notifier
	events   port.EventEmitter
}

func NewCheckoutService(
	cart port.CartStore,
	session port.SessionStore,
	gateway port.CartGateway,
	payment port.PaymentGateway,
	notifier port.Notifier,
	events port.EventEmitter,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		session:  session,
		gateway:  gateway,
		payment:  payment,
		notifier: notifier,
		events:   events,
	}
}

func (s *CheckoutService) Begin(ctx context.Context) (domain.PaymentOrder, error) {
	const op = "CheckoutService.Begin"

	if _, ok := s.session.UserID(); !ok {
		s.notifier.Info("Please login to proceed with checkout")
		return domain.PaymentOrder{}, fmt.Errorf("%s: %w", op, ErrNotAuthenticated)
	}

	if len(s.cart.Lines()) == 0 {
		return domain.PaymentOrder{}, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	receipt := "order_" + uuid.NewString()
	order, err := s.payment.CreateOrder(ctx, s.cart.Total(), receipt)
	if err != nil {
		s.notifier.Error("Failed to start checkout")
		return domain.PaymentOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

func (s *CheckoutService) Complete(
	ctx context.Context, cb domain.PaymentCallback,
) (string, error) {
	const op = "CheckoutService.Complete"
	log := slog.With("op", op)

	if !s.payment.VerifySignature(cb.OrderID, cb.PaymentID, cb.Signature) {
		s.notifier.Error("Payment verification failed")
		return "", fmt.Errorf("%s: %w", op, ErrBadSignature)
	}

	s.clearServerCart(ctx, log)

	if err := s.cart.Clear(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	userID, _ := s.session.UserID()
	evt := domain.ClientEvent{
		UserID: userID,
		Type:   domain.EventCheckoutCompleted,
		UnixTS: time.Now().Unix(),
	}
	if err := s.events.Emit(ctx, evt); err != nil {
		log.Warn("failed to emit client event", "err", err)
	}

	s.notifier.Success("Order placed successfully!")
	return ordersRedirect, nil
}

// clearServerCart removes persisted lines one by one; the backend
// has no bulk clear endpoint. Failures only log: the order is
// already paid and the local clear must still happen.
func (s *CheckoutService) clearServerCart(ctx context.Context, log *slog.Logger) {
	for _, l := range s.cart.Lines() {
		if l.CartItemID == "" {
			continue
		}
		err := s.gateway.RemoveCartItem(ctx, l.CartItemID, l.SelectedFormat)
		if err != nil {
			log.Error("failed to clear server cart line",
				"cartItemID", l.CartItemID, "err", err)
		}
	}
}
