package format_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stitchkart/storefront/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	t.Run("NoFractionDigits", func(t *testing.T) {
		assert.Equal(t, "₹499", format.Price(499))
		assert.Equal(t, "₹0", format.Price(0))
		assert.Equal(t, "₹500", format.Price(499.5))
	})

	t.Run("Grouping", func(t *testing.T) {
		assert.Equal(t, "₹1,000", format.Price(1000))
	})

	t.Run("Monotonic", func(t *testing.T) {
		digitsRe := regexp.MustCompile(`[^0-9]`)

		prices := []float64{1, 499, 999, 1500, 250000}
		var prev int64 = -1
		for _, p := range prices {
			s := digitsRe.ReplaceAllString(format.Price(p), "")
			n, err := strconv.ParseInt(s, 10, 64)
			require.NoError(t, err)
			assert.Greater(t, n, prev, "Price(%v)", p)
			prev = n
		}
	})
}

func TestDate(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got, err := format.Date("2025-01-02T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, "2 January 2025", got)
	})

	t.Run("DateOnly", func(t *testing.T) {
		got, err := format.Date("2024-11-15")
		require.NoError(t, err)
		assert.Equal(t, "15 November 2024", got)
	})

	t.Run("Unrecognized", func(t *testing.T) {
		_, err := format.Date("not a date")
		require.Error(t, err)
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Short", func(t *testing.T) {
		assert.Equal(t, "rose", format.Truncate("rose", 10))
	})

	t.Run("Exact", func(t *testing.T) {
		assert.Equal(t, "rose", format.Truncate("rose", 4))
	})

	t.Run("Cut", func(t *testing.T) {
		assert.Equal(t, "peacock...", format.Truncate("peacock motif", 7))
	})
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "floral-border-set", format.Slugify("Floral Border Set"))
	assert.Equal(t, "paisley-2", format.Slugify("Paisley #2!"))
	assert.Equal(t, "rose", format.Slugify("Rose"))
}
