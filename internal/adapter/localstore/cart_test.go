package localstore_test

import (
	"testing"

	"github.com/stitchkart/storefront/internal/adapter/localstore"
	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

func openTestDB(t *testing.T) localstore.DB {
	t.Helper()
	db, err := localstore.OpenStorage(storage.NewMemStorage())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func testLine(productID string, f domain.Format, qty int) domain.CartLine {
	return domain.CartLine{
		ProductID:      productID,
		Name:           "Rose Motif " + productID,
		Price:          499,
		MachineType:    domain.FormatBoth,
		SelectedFormat: f,
		Quantity:       qty,
	}
}

func TestCartStore(t *testing.T) {
	t.Run("AddMergesQuantityForSameKey", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("p1", domain.FormatDST, 1)))
		require.NoError(t, s.Add(testLine("p1", domain.FormatDST, 2)))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("SameProductDifferentFormatsAreTwoLines", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("p1", domain.FormatDST, 1)))
		require.NoError(t, s.Add(testLine("p1", domain.FormatJEF, 1)))

		assert.Len(t, s.Lines(), 2)
	})

	t.Run("RemoveOnlyLineLeavesEmptyCart", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("p1", domain.FormatDST, 1)))
		require.NoError(t, s.Remove("p1", domain.FormatDST))

		assert.Empty(t, s.Lines())
		assert.Zero(t, s.Total())
	})

	t.Run("SetQuantityZeroRemovesLine", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("p1", domain.FormatDST, 2)))
		require.NoError(t, s.SetQuantity("p1", domain.FormatDST, 0))

		assert.Empty(t, s.Lines())
	})

	t.Run("SetFormatReKeysLine", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("p1", domain.FormatDST, 2)))
		require.NoError(t, s.SetFormat("p1", domain.FormatDST, domain.FormatJEF))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, domain.FormatJEF, lines[0].SelectedFormat)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("SetFormatCollisionMergesQuantities", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("p1", domain.FormatDST, 1)))
		require.NoError(t, s.Add(testLine("p1", domain.FormatJEF, 2)))
		require.NoError(t, s.SetFormat("p1", domain.FormatDST, domain.FormatJEF))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, domain.FormatJEF, lines[0].SelectedFormat)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("TotalUsesEffectivePrice", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		discounted := testLine("p1", domain.FormatDST, 2)
		discounted.DiscountPrice = 399
		require.NoError(t, s.Add(discounted))
		require.NoError(t, s.Add(testLine("p2", domain.FormatJEF, 1)))

		assert.InDelta(t, 399*2+499, s.Total(), 1e-9)
	})

	t.Run("ReplaceSwapsContentsPreservingOrder", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("stale", domain.FormatDST, 5)))

		snapshot := []domain.CartLine{
			testLine("p2", domain.FormatJEF, 1),
			testLine("p1", domain.FormatDST, 3),
		}
		require.NoError(t, s.Replace(snapshot))

		lines := s.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "p2", lines[0].ProductID)
		assert.Equal(t, "p1", lines[1].ProductID)
	})

	t.Run("GuestFlowEndToEnd", func(t *testing.T) {
		s := localstore.NewCartStore(openTestDB(t))

		require.NoError(t, s.Add(testLine("a", domain.FormatDST, 1)))
		require.Len(t, s.Lines(), 1)
		assert.InDelta(t, 499, s.Total(), 1e-9)

		require.NoError(t, s.Add(testLine("a", domain.FormatJEF, 1)))
		require.Len(t, s.Lines(), 2)

		require.NoError(t, s.SetFormat("a", domain.FormatDST, domain.FormatJEF))
		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("PersistsAcrossInstances", func(t *testing.T) {
		db := openTestDB(t)

		s1 := localstore.NewCartStore(db)
		require.NoError(t, s1.Add(testLine("p1", domain.FormatDST, 2)))

		s2 := localstore.NewCartStore(db)
		lines := s2.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "p1", lines[0].ProductID)
		assert.Equal(t, 2, lines[0].Quantity)
	})
}
