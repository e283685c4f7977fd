package localstore

import (
	"fmt"
	"sync"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.WishlistStore = (*WishlistStore)(nil)

// WishlistStore is a persisted set of entries keyed by product id.
type WishlistStore struct {
	db DB

	mu      sync.Mutex
	entries []domain.WishlistEntry
}

func NewWishlistStore(db DB) *WishlistStore {
	return &WishlistStore{
		db:      db,
		entries: hydrate[[]domain.WishlistEntry](db, wishlistKey),
	}
}

func (s *WishlistStore) Add(e domain.WishlistEntry) error {
	const op = "WishlistStore.Add"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index(e.ProductID); ok {
		return nil
	}
	s.entries = append(s.entries, e)

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *WishlistStore) Remove(productID string) error {
	const op = "WishlistStore.Remove"

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(productID)
	if !ok {
		return nil
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *WishlistStore) Clear() error {
	const op = "WishlistStore.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *WishlistStore) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.index(productID)
	return ok
}

func (s *WishlistStore) Entries() []domain.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WishlistEntry(nil), s.entries...)
}

func (s *WishlistStore) index(productID string) (int, bool) {
	for i, e := range s.entries {
		if e.ProductID == productID {
			return i, true
		}
	}
	return 0, false
}

func (s *WishlistStore) persist() error {
	return s.db.put(wishlistKey, s.entries)
}
