package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
	"github.com/stitchkart/storefront/pkg/format"
)

type WishlistHandler struct {
	wishlist port.WishlistOperator
}

func (h WishlistHandler) List(w http.ResponseWriter, _ *http.Request) {
	entries := h.wishlist.Entries()

	vs := make([]WishlistEntryView, 0, len(entries))
	for _, e := range entries {
		price := e.Price
		if e.DiscountPrice > 0 && e.DiscountPrice < e.Price {
			price = e.DiscountPrice
		}
		vs = append(vs, WishlistEntryView{
			ProductID:    e.ProductID,
			Name:         e.Name,
			Price:        price,
			PriceDisplay: format.Price(price),
			MachineType:  string(e.MachineType),
			ImagesURLs:   e.ImageURLs,
		})
	}
	respond(w, http.StatusOK, vs)
}

func (h WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Toggle"

	var req WishlistToggleRequest
	if !decode(w, r, &req) {
		return
	}

	p := domain.Product{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		MachineType:   domain.Format(req.MachineType),
		ImageURLs:     req.ImagesURLs,
	}

	added, err := h.wishlist.Toggle(p)
	if err != nil {
		slog.Error("failed to toggle wishlist entry", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, struct {
		Added bool `json:"added"`
	}{added})
}

func (h WishlistHandler) Clear(w http.ResponseWriter, _ *http.Request) {
	const op = "WishlistHandler.Clear"

	if err := h.wishlist.Clear(); err != nil {
		slog.Error("failed to clear wishlist", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
