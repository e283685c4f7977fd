package httpapi

import (
	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/pkg/format"
	"github.com/stitchkart/storefront/pkg/toast"
)

type (
	ProductView struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Slug          string   `json:"slug"`
		Category      string   `json:"category"`
		SubCategory   string   `json:"sub_category,omitempty"`
		Description   string   `json:"description,omitempty"`
		Price         float64  `json:"price"`
		PriceDisplay  string   `json:"price_display"`
		DiscountPrice float64  `json:"discount_price,omitempty"`
		MachineType   string   `json:"machine_type"`
		Formats       []string `json:"formats"`
		ImagesURLs    []string `json:"images_urls"`
	}

	MachineryView struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Brand        string   `json:"brand"`
		Description  string   `json:"description,omitempty"`
		Price        float64  `json:"price"`
		PriceDisplay string   `json:"price_display"`
		ImagesURLs   []string `json:"images_urls"`
	}

	CartLineView struct {
		ProductID        string   `json:"product_id"`
		Name             string   `json:"name"`
		UnitPrice        float64  `json:"unit_price"`
		UnitPriceDisplay string   `json:"unit_price_display"`
		MachineType      string   `json:"machine_type"`
		SelectedFormat   string   `json:"selected_format"`
		Quantity         int      `json:"quantity"`
		LineTotalDisplay string   `json:"line_total_display"`
		ImagesURLs       []string `json:"images_urls"`
		CartItemID       string   `json:"cart_item_id,omitempty"`
	}

	CartView struct {
		Items           []CartLineView `json:"items"`
		Subtotal        float64        `json:"subtotal"`
		SubtotalDisplay string         `json:"subtotal_display"`
	}

	WishlistEntryView struct {
		ProductID    string   `json:"product_id"`
		Name         string   `json:"name"`
		Price        float64  `json:"price"`
		PriceDisplay string   `json:"price_display"`
		MachineType  string   `json:"machine_type"`
		ImagesURLs   []string `json:"images_urls"`
	}

	OrderView struct {
		OrderID          string          `json:"order_id"`
		CreatedAt        string          `json:"created_at"`
		CreatedAtDisplay string          `json:"created_at_display,omitempty"`
		Status           string          `json:"status"`
		Total            float64         `json:"total"`
		TotalDisplay     string          `json:"total_display"`
		Items            []OrderItemView `json:"items"`
	}

	OrderItemView struct {
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Format    string  `json:"selected_format"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	}

	DownloadView struct {
		ProductID string `json:"product_id"`
		Name      string `json:"name"`
		Format    string `json:"selected_format"`
		URL       string `json:"url"`
	}

	PaymentOrderView struct {
		OrderID  string  `json:"order_id"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Receipt  string  `json:"receipt"`
	}

	NoteView struct {
		Message string `json:"message"`
		Kind    string `json:"kind"`
	}

	SessionView struct {
		Authenticated bool   `json:"authenticated"`
		Name          string `json:"name,omitempty"`
		Email         string `json:"email,omitempty"`
	}
)

// Request bodies. Cart requests carry the denormalized product
// fields the page already holds, so no catalog re-fetch happens.
type (
	AddCartItemRequest struct {
		ProductID      string   `json:"product_id"`
		Name           string   `json:"name"`
		Price          float64  `json:"price"`
		DiscountPrice  float64  `json:"discount_price"`
		MachineType    string   `json:"machine_type"`
		ImagesURLs     []string `json:"images_urls"`
		SelectedFormat string   `json:"selected_format"`
	}

	RemoveCartItemRequest struct {
		ProductID      string `json:"product_id"`
		SelectedFormat string `json:"selected_format"`
		CartItemID     string `json:"cart_item_id"`
	}

	UpdateQuantityRequest struct {
		ProductID      string `json:"product_id"`
		SelectedFormat string `json:"selected_format"`
		Quantity       int    `json:"quantity"`
	}

	ChangeFormatRequest struct {
		ProductID      string `json:"product_id"`
		SelectedFormat string `json:"selected_format"`
		NewFormat      string `json:"new_format"`
		CartItemID     string `json:"cart_item_id"`
	}

	WishlistToggleRequest struct {
		ProductID     string   `json:"product_id"`
		Name          string   `json:"name"`
		Price         float64  `json:"price"`
		DiscountPrice float64  `json:"discount_price"`
		MachineType   string   `json:"machine_type"`
		ImagesURLs    []string `json:"images_urls"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	CheckoutCallbackRequest struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
		Signature string `json:"signature"`
	}
)

func toProductView(p domain.Product) ProductView {
	formats := make([]string, 0, 2)
	for _, f := range p.MachineType.Formats() {
		formats = append(formats, string(f))
	}
	return ProductView{
		ID:            p.ProductID,
		Name:          p.Name,
		Slug:          format.Slugify(p.Name),
		Category:      p.Category,
		SubCategory:   p.SubCategory,
		Description:   p.Description,
		Price:         p.Price,
		PriceDisplay:  format.Price(p.EffectivePrice()),
		DiscountPrice: p.DiscountPrice,
		MachineType:   string(p.MachineType),
		Formats:       formats,
		ImagesURLs:    p.ImageURLs,
	}
}

func toProductViews(ps []domain.Product) []ProductView {
	vs := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		vs = append(vs, toProductView(p))
	}
	return vs
}

func toCartView(lines []domain.CartLine, total float64) CartView {
	items := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineView{
			ProductID:        l.ProductID,
			Name:             l.Name,
			UnitPrice:        l.UnitPrice(),
			UnitPriceDisplay: format.Price(l.UnitPrice()),
			MachineType:      string(l.MachineType),
			SelectedFormat:   string(l.SelectedFormat),
			Quantity:         l.Quantity,
			LineTotalDisplay: format.Price(l.UnitPrice() * float64(l.Quantity)),
			ImagesURLs:       l.ImageURLs,
			CartItemID:       l.CartItemID,
		})
	}
	return CartView{
		Items:           items,
		Subtotal:        total,
		SubtotalDisplay: format.Price(total),
	}
}

func toOrderView(o domain.Order) OrderView {
	v := OrderView{
		OrderID:      o.OrderID,
		CreatedAt:    o.CreatedAt,
		Status:       o.Status,
		Total:        o.Total,
		TotalDisplay: format.Price(o.Total),
	}
	if d, err := format.Date(o.CreatedAt); err == nil {
		v.CreatedAtDisplay = d
	}
	for _, it := range o.Items {
		v.Items = append(v.Items, OrderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			Format:    string(it.Format),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return v
}

func toNoteViews(notes []toast.Note) []NoteView {
	vs := make([]NoteView, 0, len(notes))
	for _, n := range notes {
		vs = append(vs, NoteView{Message: n.Message, Kind: string(n.Kind)})
	}
	return vs
}
