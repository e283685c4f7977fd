package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stitchkart/storefront/internal/adapter/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	t.Run("AmountInPaiseWithBasicAuth", func(t *testing.T) {
		var gotBody struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/orders", r.URL.Path)

				user, pass, ok := r.BasicAuth()
				require.True(t, ok)
				assert.Equal(t, "key-id", user)
				assert.Equal(t, "key-secret", pass)

				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				json.NewEncoder(w).Encode(map[string]any{
					"id": "order_xyz", "amount": gotBody.Amount, "currency": "INR",
				})
			},
		))
		t.Cleanup(srv.Close)

		g := payment.New(srv.URL, "key-id", "key-secret")
		order, err := g.CreateOrder(t.Context(), 1299.50, "order_r1")
		require.NoError(t, err)

		assert.Equal(t, int64(129950), gotBody.Amount)
		assert.Equal(t, "INR", gotBody.Currency)
		assert.Equal(t, "order_r1", gotBody.Receipt)

		assert.Equal(t, "order_xyz", order.OrderID)
		assert.InDelta(t, 1299.50, order.Amount, 1e-9)
		assert.Equal(t, "order_r1", order.Receipt)
	})

	t.Run("ProviderRejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		))
		t.Cleanup(srv.Close)

		g := payment.New(srv.URL, "key-id", "key-secret")
		_, err := g.CreateOrder(t.Context(), 100, "order_r1")
		require.Error(t, err)
	})
}

func TestVerifySignature(t *testing.T) {
	const secret = "key-secret"
	g := payment.New("http://unused", "key-id", secret)

	sign := func(orderID, paymentID string) string {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(orderID + "|" + paymentID))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, g.VerifySignature("o1", "pay1", sign("o1", "pay1")))
	})

	t.Run("TamperedPaymentID", func(t *testing.T) {
		assert.False(t, g.VerifySignature("o1", "pay2", sign("o1", "pay1")))
	})

	t.Run("EmptySignature", func(t *testing.T) {
		assert.False(t, g.VerifySignature("o1", "pay1", ""))
	})
}
