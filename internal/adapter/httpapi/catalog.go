package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stitchkart/storefront/internal/core/port"
	"github.com/stitchkart/storefront/pkg/format"
)

type CatalogHandler struct {
	catalog port.CatalogProvider
}

func (h CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Home"

	ps, err := h.catalog.Home(r.Context())
	if err != nil {
		slog.Error("failed to fetch latest products", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toProductViews(ps))
}

func (h CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Products"

	ps, err := h.catalog.Products(r.Context())
	if err != nil {
		slog.Error("failed to fetch products", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toProductViews(ps))
}

func (h CatalogHandler) Product(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Product"

	p, err := h.catalog.Product(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("failed to fetch product", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toProductView(p))
}

func (h CatalogHandler) SubCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.SubCategories"

	subs, err := h.catalog.SubCategories(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		slog.Error("failed to fetch subcategories", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	if subs == nil {
		subs = []string{}
	}
	respond(w, http.StatusOK, subs)
}

func (h CatalogHandler) ProductsBySubCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ProductsBySubCategory"

	ps, err := h.catalog.ProductsBySubCategory(
		r.Context(),
		chi.URLParam(r, "category"),
		chi.URLParam(r, "sub"),
	)
	if err != nil {
		slog.Error("failed to fetch products by subcategory", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, toProductViews(ps))
}

func (h CatalogHandler) Machinery(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Machinery"

	ms, err := h.catalog.Machinery(r.Context())
	if err != nil {
		slog.Error("failed to fetch machinery", "op", op, "err", err)
		respondErr(w, err)
		return
	}

	vs := make([]MachineryView, 0, len(ms))
	for _, m := range ms {
		vs = append(vs, MachineryView{
			ID:           m.MachineryID,
			Name:         m.Name,
			Brand:        m.Brand,
			Description:  m.Description,
			Price:        m.Price,
			PriceDisplay: format.Price(m.Price),
			ImagesURLs:   m.ImageURLs,
		})
	}
	respond(w, http.StatusOK, vs)
}
