package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

type CheckoutHandler struct {
	checkout port.CheckoutOperator
}

func (h CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Begin"

	order, err := h.checkout.Begin(r.Context())
	if err != nil {
		slog.Error("failed to begin checkout", "op", op, "err", err)
		respondErr(w, err)
		return
	}

	respond(w, http.StatusCreated, PaymentOrderView{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	})
}

// Callback consumes the payment collaborator's success callback.
func (h CheckoutHandler) Callback(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Callback"

	var req CheckoutCallbackRequest
	if !decode(w, r, &req) {
		return
	}

	redirect, err := h.checkout.Complete(r.Context(), domain.PaymentCallback{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		slog.Error("failed to complete checkout", "op", op, "err", err)
		respondErr(w, err)
		return
	}

	respond(w, http.StatusOK, struct {
		Redirect string `json:"redirect"`
	}{redirect})
}
