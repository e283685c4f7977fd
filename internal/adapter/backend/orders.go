package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stitchkart/storefront/internal/core/domain"
)

func (c Client) FetchOrders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "Client.FetchOrders"

	var os []order
	path := "/v1/users/" + url.PathEscape(userID) + "/orders"
	if err := c.get(ctx, path, &os); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs := make([]domain.Order, 0, len(os))
	for _, o := range os {
		v := domain.Order{
			OrderID:   o.ID,
			CreatedAt: o.CreatedAt,
			Status:    o.Status,
			Total:     o.Total,
		}
		for _, it := range o.Items {
			v.Items = append(v.Items, domain.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Format:    domain.Format(it.Format),
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func (c Client) FetchDownloads(
	ctx context.Context, userID string,
) ([]domain.Download, error) {
	const op = "Client.FetchDownloads"

	var ds []download
	path := "/v1/users/" + url.PathEscape(userID) + "/downloads"
	if err := c.get(ctx, path, &ds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs := make([]domain.Download, 0, len(ds))
	for _, d := range ds {
		vs = append(vs, domain.Download{
			ProductID: d.ProductID,
			Name:      d.Name,
			Format:    domain.Format(d.Format),
			URL:       d.URL,
		})
	}
	return vs, nil
}
