package localstore

import (
	"fmt"
	"sync"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.CartStore = (*CartStore)(nil)

// CartStore keeps cart lines keyed by (product id, selected
// format) in insertion order. Every mutation persists the whole
// line slice as one blob.
type CartStore struct {
	db DB

	mu    sync.Mutex
	lines []domain.CartLine
}

func NewCartStore(db DB) *CartStore {
	return &CartStore{db: db, lines: hydrate[[]domain.CartLine](db, cartKey)}
}

// Add appends the line, merging quantity into an existing line
// with the same (product, format) key.
func (s *CartStore) Add(line domain.CartLine) error {
	const op = "CartStore.Add"

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index(line.ProductID, line.SelectedFormat); ok {
		s.lines[i].Quantity += line.Quantity
	} else {
		s.lines = append(s.lines, line)
	}

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CartStore) Remove(productID string, format domain.Format) error {
	const op = "CartStore.Remove"

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(productID, format)
	if !ok {
		return nil
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SetQuantity sets the line quantity; a quantity of zero or less
// removes the line instead.
func (s *CartStore) SetQuantity(
	productID string, format domain.Format, quantity int,
) error {
	const op = "CartStore.SetQuantity"

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(productID, format)
	if !ok {
		return nil
	}

	if quantity <= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	} else {
		s.lines[i].Quantity = quantity
	}

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SetFormat re-keys a line to a new selected format. When the new
// key collides with an existing line the quantities merge into
// the surviving line.
func (s *CartStore) SetFormat(
	productID string, oldFormat, newFormat domain.Format,
) error {
	const op = "CartStore.SetFormat"

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(productID, oldFormat)
	if !ok {
		return nil
	}

	if j, collides := s.index(productID, newFormat); collides && j != i {
		s.lines[j].Quantity += s.lines[i].Quantity
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	} else {
		s.lines[i].SelectedFormat = newFormat
	}

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Replace swaps the whole contents for the given lines in one
// step, preserving their order. Used by reconciliation so the
// cart never renders a half-replaced state.
func (s *CartStore) Replace(lines []domain.CartLine) error {
	const op = "CartStore.Replace"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append([]domain.CartLine(nil), lines...)

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CartStore) Clear() error {
	const op = "CartStore.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CartStore) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine(nil), s.lines...)
}

// Total is the sum of effective unit price times quantity.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.UnitPrice() * float64(l.Quantity)
	}
	return total
}

func (s *CartStore) index(productID string, format domain.Format) (int, bool) {
	for i, l := range s.lines {
		if l.ProductID == productID && l.SelectedFormat == format {
			return i, true
		}
	}
	return 0, false
}

func (s *CartStore) persist() error {
	return s.db.put(cartKey, s.lines)
}
