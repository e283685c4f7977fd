package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

type CartHandler struct {
	cart port.CartOperator
}

// View triggers the mount-time reconciliation for authenticated
// sessions before rendering.
func (h CartHandler) View(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.View"

	lines, total, err := h.cart.View(r.Context())
	if err != nil {
		slog.Error("failed to view cart", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toCartView(lines, total))
}

func (h CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.Add"

	var req AddCartItemRequest
	if !decode(w, r, &req) {
		return
	}

	f := domain.Format(req.SelectedFormat)
	if !f.Valid() {
		http.Error(w, "invalid selected format", http.StatusBadRequest)
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

	if err := h.cart.AddProduct(r.Context(), p, f); err != nil {
		slog.Error("failed to add product to cart", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.Remove"

	var req RemoveCartItemRequest
	if !decode(w, r, &req) {
		return
	}

	line := domain.CartLine{
		ProductID:      req.ProductID,
		SelectedFormat: domain.Format(req.SelectedFormat),
		CartItemID:     req.CartItemID,
	}

	if err := h.cart.RemoveLine(r.Context(), line); err != nil {
		slog.Error("failed to remove cart line", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.SetQuantity"

	var req UpdateQuantityRequest
	if !decode(w, r, &req) {
		return
	}

	err := h.cart.SetQuantity(
		r.Context(),
		req.ProductID,
		domain.Format(req.SelectedFormat),
		req.Quantity,
	)
	if err != nil {
		slog.Error("failed to update quantity", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) ChangeFormat(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ChangeFormat"

	var req ChangeFormatRequest
	if !decode(w, r, &req) {
		return
	}

	f := domain.Format(req.NewFormat)
	if !f.Valid() {
		http.Error(w, "invalid new format", http.StatusBadRequest)
		return
	}

	line := domain.CartLine{
		ProductID:      req.ProductID,
		SelectedFormat: domain.Format(req.SelectedFormat),
		CartItemID:     req.CartItemID,
	}

	if err := h.cart.ChangeFormat(r.Context(), line, f); err != nil {
		slog.Error("failed to change format", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
