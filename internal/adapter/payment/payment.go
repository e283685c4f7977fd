// Package payment is the client for the external payment
// collaborator. The core only consumes order creation and the
// success-callback signature check.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.PaymentGateway = (*Gateway)(nil)

type Gateway struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

func New(baseURL, keyID, keySecret string) Gateway {
	return Gateway{
		baseURL:    baseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: &http.Client{},
	}
}

// CreateOrder registers an order for the given INR amount; the
// provider wants the amount in paise.
func (g Gateway) CreateOrder(
	ctx context.Context, amount float64, receipt string,
) (domain.PaymentOrder, error) {
	const op = "Gateway.CreateOrder"

	body := struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Receipt  string `json:"receipt"`
	}{
		Amount:   int64(math.Round(amount * 100)),
		Currency: "INR",
		Receipt:  receipt,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return domain.PaymentOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(b),
	)
	if err != nil {
		return domain.PaymentOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domain.PaymentOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.PaymentOrder{}, fmt.Errorf(
			"%s: unexpected response status %d", op, resp.StatusCode)
	}

	var created struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.PaymentOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.PaymentOrder{
		OrderID:  created.ID,
		Amount:   float64(created.Amount) / 100,
		Currency: created.Currency,
		Receipt:  receipt,
	}, nil
}

// VerifySignature checks the collaborator's success callback:
// hex HMAC-SHA256 of "orderID|paymentID" under the key secret.
func (g Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	want := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(want), []byte(signature))
}
