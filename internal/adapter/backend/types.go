package backend

import (
	"github.com/stitchkart/storefront/internal/core/domain"
)

type (
	product struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Category      string   `json:"category"`
		SubCategory   string   `json:"sub_category"`
		Description   string   `json:"description"`
		Price         float64  `json:"price"`
		DiscountPrice *float64 `json:"discount_price"`
		MachineType   string   `json:"machine_type"`
		ImagesURLs    []string `json:"images_urls"`
	}

	machinery struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Brand       string   `json:"brand"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		ImagesURLs  []string `json:"images_urls"`
	}

	// cartItem is one server cart snapshot row. Price and
	// UnitPrice are pointers: the backend may send either, and
	// the fallback chain is resolved once in toCartLine.
	cartItem struct {
		ID             string   `json:"id"`
		ProductID      string   `json:"product_id"`
		Name           string   `json:"name"`
		Price          *float64 `json:"price"`
		UnitPrice      *float64 `json:"unit_price"`
		MachineType    string   `json:"machine_type"`
		SelectedFormat string   `json:"selected_format"`
		Quantity       int      `json:"quantity"`
		ImagesURLs     []string `json:"images_urls"`
	}

	cartItemPayload struct {
		ProductID      string  `json:"product_id"`
		Name           string  `json:"name"`
		MachineType    string  `json:"machine_type"`
		SelectedFormat string  `json:"selected_format"`
		UnitPrice      float64 `json:"unit_price"`
		Quantity       int     `json:"quantity"`
	}

	authResponse struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}

	order struct {
		ID        string      `json:"id"`
		CreatedAt string      `json:"created_at"`
		Status    string      `json:"status"`
		Total     float64     `json:"total"`
		Items     []orderItem `json:"items"`
	}

	orderItem struct {
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Format    string  `json:"selected_format"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	}

	download struct {
		ProductID string `json:"product_id"`
		Name      string `json:"name"`
		Format    string `json:"selected_format"`
		URL       string `json:"url"`
	}
)

func (p product) toDomain() domain.Product {
	v := domain.Product{
		ProductID:   p.ID,
		Name:        p.Name,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Description: p.Description,
		Price:       p.Price,
		MachineType: domain.Format(p.MachineType),
		ImageURLs:   p.ImagesURLs,
	}
	if p.DiscountPrice != nil {
		v.DiscountPrice = *p.DiscountPrice
	}
	return v
}

func (m machinery) toDomain() domain.Machinery {
	return domain.Machinery{
		MachineryID: m.ID,
		Name:        m.Name,
		Brand:       m.Brand,
		Description: m.Description,
		Price:       m.Price,
		ImageURLs:   m.ImagesURLs,
	}
}

// toCartLine maps a snapshot row to the canonical cart line:
// catalog price falls back to the unit price, and the effective
// unit price wins as the discount when the server sends one
// below the catalog price.
func (it cartItem) toCartLine() domain.CartLine {
	var price, discount float64
	switch {
	case it.Price != nil:
		price = *it.Price
	case it.UnitPrice != nil:
		price = *it.UnitPrice
	}
	discount = price
	if it.UnitPrice != nil && *it.UnitPrice < price {
		discount = *it.UnitPrice
	}

	return domain.CartLine{
		ProductID:      it.ProductID,
		Name:           it.Name,
		Price:          price,
		DiscountPrice:  discount,
		MachineType:    domain.Format(it.MachineType),
		SelectedFormat: domain.Format(it.SelectedFormat),
		Quantity:       it.Quantity,
		ImageURLs:      it.ImagesURLs,
		CartItemID:     it.ID,
	}
}

func toCartItemPayload(l domain.CartLine) cartItemPayload {
	return cartItemPayload{
		ProductID:      l.ProductID,
		Name:           l.Name,
		MachineType:    string(l.MachineType),
		SelectedFormat: string(l.SelectedFormat),
		UnitPrice:      l.UnitPrice(),
		Quantity:       l.Quantity,
	}
}
