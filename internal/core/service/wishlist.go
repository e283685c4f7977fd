package service

import (
	"fmt"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.WishlistOperator = (*WishlistService)(nil)

// WishlistService is purely local: membership is a persisted set
// keyed by product id with no server sync.
type WishlistService struct {
	store    port.WishlistStore
	notifier port.Notifier
}

func NewWishlistService(
	store port.WishlistStore, notifier port.Notifier,
) *WishlistService {
	return &WishlistService{store: store, notifier: notifier}
}

func (s *WishlistService) Toggle(p domain.Product) (bool, error) {
	const op = "WishlistService.Toggle"

	if s.store.Contains(p.ProductID) {
		if err := s.store.Remove(p.ProductID); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		s.notifier.Success("Removed from wishlist")
		return false, nil
	}

	if err := s.store.Add(domain.EntryFromProduct(p)); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	s.notifier.Success("Added to wishlist!")
	return true, nil
}

func (s *WishlistService) Entries() []domain.WishlistEntry {
	return s.store.Entries()
}

func (s *WishlistService) Clear() error {
	const op = "WishlistService.Clear"

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
