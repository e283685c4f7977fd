package backend_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stitchkart/storefront/internal/adapter/backend"
	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {
	t.Run("MapsWireFields", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/products", r.URL.Path)
			json.NewEncoder(w).Encode([]map[string]any{
				{
					"id":             "p1",
					"name":           "Floral Border Set",
					"category":       "designs",
					"sub_category":   "borders",
					"price":          599,
					"discount_price": 499,
					"machine_type":   "Both",
					"images_urls":    []string{"https://img/1.png"},
				},
				{
					"id":           "p2",
					"name":         "Paisley",
					"price":        299,
					"machine_type": "DST",
				},
			})
		})

		ps, err := c.FetchProducts(t.Context())
		require.NoError(t, err)
		require.Len(t, ps, 2)

		assert.Equal(t, "p1", ps[0].ProductID)
		assert.Equal(t, "borders", ps[0].SubCategory)
		assert.Equal(t, domain.FormatBoth, ps[0].MachineType)
		assert.InDelta(t, 499, ps[0].EffectivePrice(), 1e-9)
		assert.Equal(t, []string{"https://img/1.png"}, ps[0].ImageURLs)

		assert.Zero(t, ps[1].DiscountPrice)
		assert.InDelta(t, 299, ps[1].EffectivePrice(), 1e-9)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		ps, err := c.FetchProducts(t.Context())
		require.NoError(t, err)
		assert.Empty(t, ps)
	})
}

func TestFetchProductByID(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.FetchProductByID(t.Context(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, backend.ErrNotFound)
	})

	t.Run("Found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/products/p1", r.URL.Path)
			w.Write([]byte(`{"id":"p1","name":"Rose","price":499,"machine_type":"JEF"}`))
		})

		p, err := c.FetchProductByID(t.Context(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "Rose", p.Name)
		assert.Equal(t, []domain.Format{domain.FormatJEF}, p.MachineType.Formats())
	})
}

func TestFetchSubCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/categories/designs/subcategories", r.URL.Path)
		w.Write([]byte(`["borders","florals"]`))
	})

	subs, err := c.FetchSubCategories(t.Context(), "designs")
	require.NoError(t, err)
	assert.Equal(t, []string{"borders", "florals"}, subs)
}

func TestFetchMachinery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/machinery", r.URL.Path)
		w.Write([]byte(`[{"id":"m1","name":"Stitcher 9000","brand":"Janome","price":45000}]`))
	})

	ms, err := c.FetchMachinery(t.Context())
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "m1", ms[0].MachineryID)
	assert.Equal(t, "Janome", ms[0].Brand)
}
