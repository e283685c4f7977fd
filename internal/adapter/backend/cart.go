package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/stitchkart/storefront/internal/core/domain"
)

// FetchCartItems fetches the authoritative cart snapshot: a JSON
// object mapping opaque keys to cart rows. Rows come back in the
// document's own order (no explicit sort), so a replace preserves
// the server's iteration order. Rows without a product id are
// logged and skipped rather than crashing the cart.
func (c Client) FetchCartItems(
	ctx context.Context, userID string,
) ([]domain.CartLine, error) {
	const op = "Client.FetchCartItems"
	log := slog.With("op", op)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+cartPath(userID), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w: %d",
			op, ErrUnexpectedStatus, resp.StatusCode)
	}

	lines, err := decodeSnapshot(json.NewDecoder(resp.Body), log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return lines, nil
}

// decodeSnapshot walks the JSON object token by token so rows
// keep document order, which encoding/json map decoding would
// scramble.
func decodeSnapshot(dec *json.Decoder, log *slog.Logger) ([]domain.CartLine, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("snapshot is not a JSON object")
	}

	var lines []domain.CartLine
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, err
		}

		var it cartItem
		if err := dec.Decode(&it); err != nil {
			return nil, err
		}

		if it.ProductID == "" {
			log.Warn("skipping snapshot row without product id", "key", key)
			continue
		}
		lines = append(lines, it.toCartLine())
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c Client) AddCartItems(
	ctx context.Context, userID string, ls []domain.CartLine,
) error {
	const op = "Client.AddCartItems"

	payload := make([]cartItemPayload, 0, len(ls))
	for _, l := range ls {
		payload = append(payload, toCartItemPayload(l))
	}

	err := c.do(ctx, http.MethodPost, cartPath(userID), payload, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c Client) UpdateCartItemFormat(
	ctx context.Context, cartItemID string, format domain.Format,
) error {
	const op = "Client.UpdateCartItemFormat"

	body := struct {
		SelectedFormat string `json:"selected_format"`
	}{string(format)}

	err := c.do(ctx, http.MethodPut, cartItemPath(cartItemID), body, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c Client) UpdateCartItemQuantity(
	ctx context.Context, cartItemID string, quantity int,
) error {
	const op = "Client.UpdateCartItemQuantity"

	body := struct {
		Quantity int `json:"quantity"`
	}{quantity}

	err := c.do(ctx, http.MethodPut, cartItemPath(cartItemID), body, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c Client) RemoveCartItem(
	ctx context.Context, cartItemID string, format domain.Format,
) error {
	const op = "Client.RemoveCartItem"

	path := cartItemPath(cartItemID) + "?format=" + url.QueryEscape(string(format))
	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func cartPath(userID string) string {
	return "/v1/carts/" + url.PathEscape(userID) + "/items"
}

func cartItemPath(cartItemID string) string {
	return "/v1/cart-items/" + url.PathEscape(cartItemID)
}
