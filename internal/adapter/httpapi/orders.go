package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/stitchkart/storefront/internal/core/port"
)

type OrdersHandler struct {
	orders port.OrdersProvider
}

func (h OrdersHandler) Orders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.Orders"

	os, err := h.orders.Orders(r.Context())
	if err != nil {
		slog.Error("failed to fetch orders", "op", op, "err", err)
		respondErr(w, err)
		return
	}

	vs := make([]OrderView, 0, len(os))
	for _, o := range os {
		vs = append(vs, toOrderView(o))
	}
	respond(w, http.StatusOK, vs)
}

func (h OrdersHandler) Downloads(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.Downloads"

	ds, err := h.orders.Downloads(r.Context())
	if err != nil {
		slog.Error("failed to fetch downloads", "op", op, "err", err)
		respondErr(w, err)
		return
	}

	vs := make([]DownloadView, 0, len(ds))
	for _, d := range ds {
		vs = append(vs, DownloadView{
			ProductID: d.ProductID,
			Name:      d.Name,
			Format:    string(d.Format),
			URL:       d.URL,
		})
	}
	respond(w, http.StatusOK, vs)
}
