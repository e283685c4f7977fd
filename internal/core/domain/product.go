package domain

// Format is a machine embroidery file format.
type Format string

const (
	FormatDST Format = "DST"
	FormatJEF Format = "JEF"

	// FormatBoth marks a product available in both formats;
	// it is never a valid selected format for a cart line.
	FormatBoth Format = "Both"
)

// Formats returns the selectable formats for the machine type.
func (f Format) Formats() []Format {
	if f == FormatBoth {
		return []Format{FormatDST, FormatJEF}
	}
	return []Format{f}
}

func (f Format) Valid() bool {
	return f == FormatDST || f == FormatJEF
}

type (
	Product struct {
		ProductID     string
		Name          string
		Category      string
		SubCategory   string
		Description   string
		Price         float64
		DiscountPrice float64
		MachineType   Format
		ImageURLs     []string
	}

	Machinery struct {
		MachineryID string
		Name        string
		Brand       string
		Description string
		Price       float64
		ImageURLs   []string
	}
)

// EffectivePrice is the discount price when one is set below
// the catalog price, otherwise the catalog price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 && p.DiscountPrice < p.Price {
		return p.DiscountPrice
	}
	return p.Price
}
