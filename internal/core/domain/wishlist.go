package domain

// WishlistEntry is a wished product; membership is a set keyed
// by product id.
type WishlistEntry struct {
	ProductID     string
	Name          string
	Price         float64
	DiscountPrice float64
	MachineType   Format
	ImageURLs     []string
}

func EntryFromProduct(p Product) WishlistEntry {
	return WishlistEntry{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		MachineType:   p.MachineType,
		ImageURLs:     p.ImageURLs,
	}
}
