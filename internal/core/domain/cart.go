package domain

// CartKey identifies a cart line: two lines may exist for the
// same product with different selected formats.
type CartKey struct {
	ProductID string
	Format    Format
}

// CartLine is one (product, format) cart entry with a quantity.
// Product fields are denormalized so the cart renders without a
// catalog re-fetch. CartItemID is server-assigned and empty until
// the line is persisted server-side.
type CartLine struct {
	ProductID      string
	Name           string
	Price          float64
	DiscountPrice  float64
	MachineType    Format
	SelectedFormat Format
	Quantity       int
	ImageURLs      []string
	CartItemID     string
}

func (l CartLine) Key() CartKey {
	return CartKey{ProductID: l.ProductID, Format: l.SelectedFormat}
}

// UnitPrice is the effective per-unit price of the line.
func (l CartLine) UnitPrice() float64 {
	if l.DiscountPrice > 0 && l.DiscountPrice < l.Price {
		return l.DiscountPrice
	}
	return l.Price
}

// LineFromProduct builds a guest cart line with quantity 1.
func LineFromProduct(p Product, format Format) CartLine {
	return CartLine{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		MachineType:    p.MachineType,
		SelectedFormat: format,
		Quantity:       1,
		ImageURLs:      p.ImageURLs,
	}
}
