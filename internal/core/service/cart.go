package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.CartOperator = (*CartService)(nil)

var ErrLineNotPersisted = errors.New("cart line has no server item id")

// CartService keeps the locally rendered cart consistent with the
// authenticated user's server cart using a replace-on-mutation
// protocol: the mutating call goes to the server first, then the
// full snapshot is fetched and swapped into the local store. For
// guest sessions every operation short-circuits to the local store.
type CartService struct {
	store    port.CartStore
	session  port.SessionStore
	gateway  port.CartGateway
	notifier port.Notifier
	events   port.EventEmitter

	mu  sync.Mutex
	gen atomic.Uint64
}

func NewCartService(
	store port.CartStore,
	session port.SessionStore,
	gateway port.CartGateway,
	notifier port.Notifier,
	events port.EventEmitter,
) *CartService {
	return &CartService{
		store:    store,
		session:  session,
		gateway:  gateway,
		notifier: notifier,
		events:   events,
	}
}

// View returns the cart lines and total. For an authenticated
// session it first reconciles against the server snapshot; the
// mount-time trigger has no preceding mutation.
func (s *CartService) View(ctx context.Context) ([]domain.CartLine, float64, error) {
	const op = "CartService.View"

	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if userID, ok := s.session.UserID(); ok {
		s.reconcile(ctx, userID)
	}
	return s.store.Lines(), s.store.Total(), nil
}

func (s *CartService) AddProduct(
	ctx context.Context, p domain.Product, format domain.Format,
) error {
	const op = "CartService.AddProduct"

	line := domain.LineFromProduct(p, format)

	userID, ok := s.session.UserID()
	if !ok {
		if err := s.store.Add(line); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.notifier.Success("Added to cart!")
		s.emit(ctx, domain.EventCartItemAdded, "", line)
		return nil
	}

	err := s.gateway.AddCartItems(ctx, userID, []domain.CartLine{line})
	if err != nil {
		s.notifier.Error("Failed to add to cart")
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reconcile(ctx, userID)
	s.notifier.Success("Added to cart!")
	s.emit(ctx, domain.EventCartItemAdded, userID, line)
	return nil
}

func (s *CartService) RemoveLine(ctx context.Context, line domain.CartLine) error {
	const op = "CartService.RemoveLine"

	userID, ok := s.session.UserID()
	if !ok {
		err := s.store.Remove(line.ProductID, line.SelectedFormat)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.emit(ctx, domain.EventCartItemRemoved, "", line)
		return nil
	}

	if line.CartItemID == "" {
		return fmt.Errorf("%s: %w", op, ErrLineNotPersisted)
	}

	err := s.gateway.RemoveCartItem(ctx, line.CartItemID, line.SelectedFormat)
	if err != nil {
		s.notifier.Error("Failed to remove item")
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reconcile(ctx, userID)
	s.notifier.Success("Item removed")
	s.emit(ctx, domain.EventCartItemRemoved, userID, line)
	return nil
}

func (s *CartService) ChangeFormat(
	ctx context.Context, line domain.CartLine, format domain.Format,
) error {
	const op = "CartService.ChangeFormat"

	userID, ok := s.session.UserID()
	if !ok {
		err := s.store.SetFormat(line.ProductID, line.SelectedFormat, format)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.emit(ctx, domain.EventCartFormatChanged, "", line)
		return nil
	}

	if line.CartItemID == "" {
		return fmt.Errorf("%s: %w", op, ErrLineNotPersisted)
	}

	err := s.gateway.UpdateCartItemFormat(ctx, line.CartItemID, format)
	if err != nil {
		s.notifier.Error("Failed to update format")
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reconcile(ctx, userID)
	s.notifier.Success("Format updated")
	s.emit(ctx, domain.EventCartFormatChanged, userID, line)
	return nil
}

func (s *CartService) SetQuantity(
	ctx context.Context, productID string, format domain.Format, quantity int,
) error {
	const op = "CartService.SetQuantity"

	userID, ok := s.session.UserID()
	if !ok {
		err := s.store.SetQuantity(productID, format, quantity)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	line, ok := s.findLine(productID, format)
	if !ok || line.CartItemID == "" {
		return fmt.Errorf("%s: %w", op, ErrLineNotPersisted)
	}

	err := s.gateway.UpdateCartItemQuantity(ctx, line.CartItemID, quantity)
	if err != nil {
		s.notifier.Error("Failed to update quantity")
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reconcile(ctx, userID)
	return nil
}

// reconcile fetches the server snapshot and replaces the local
// store contents with it. Each invocation takes a generation; a
// run superseded by a newer one discards its snapshot instead of
// racing it. Fetch failures are logged and swallowed: the server
// mutation is already committed and the local store keeps its
// previous contents.
func (s *CartService) reconcile(ctx context.Context, userID string) {
	const op = "CartService.reconcile"
	log := slog.With("op", op)

	gen := s.gen.Add(1)

	lines, err := s.gateway.FetchCartItems(ctx, userID)
	if err != nil {
		log.Error("failed to fetch server cart", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen.Load() {
		log.Debug("superseded by newer reconciliation", "gen", gen)
		return
	}

	if err := s.store.Replace(lines); err != nil {
		log.Error("failed to replace local cart", "err", err)
	}
}

func (s *CartService) findLine(
	productID string, format domain.Format,
) (domain.CartLine, bool) {
	for _, l := range s.store.Lines() {
		if l.ProductID == productID && l.SelectedFormat == format {
			return l, true
		}
	}
	return domain.CartLine{}, false
}

func (s *CartService) emit(
	ctx context.Context, t domain.EventType, userID string, line domain.CartLine,
) {
	evt := domain.ClientEvent{
		UserID:    userID,
		Type:      t,
		ProductID: line.ProductID,
		Name:      line.Name,
		Price:     line.UnitPrice(),
		Format:    line.SelectedFormat,
		Quantity:  line.Quantity,
		UnixTS:    time.Now().Unix(),
	}
	if err := s.events.Emit(ctx, evt); err != nil {
		slog.Warn("failed to emit client event", "type", t, "err", err)
	}
}
