package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stitchkart/storefront/internal/core/domain"
)

func (c Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.FetchProducts"
	return c.fetchProductList(ctx, op, "/v1/products")
}

func (c Client) FetchLatestProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.FetchLatestProducts"
	return c.fetchProductList(ctx, op, "/v1/products/latest")
}

func (c Client) FetchProductByID(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "Client.FetchProductByID"

	var p product
	path := "/v1/products/" + url.PathEscape(productID)
	if err := c.get(ctx, path, &p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p.toDomain(), nil
}

func (c Client) FetchSubCategories(
	ctx context.Context, category string,
) ([]string, error) {
	const op = "Client.FetchSubCategories"

	var subs []string
	path := "/v1/categories/" + url.PathEscape(category) + "/subcategories"
	if err := c.get(ctx, path, &subs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

func (c Client) FetchProductsBySubCategory(
	ctx context.Context, category, sub string,
) ([]domain.Product, error) {
	const op = "Client.FetchProductsBySubCategory"

	path := "/v1/categories/" + url.PathEscape(category) +
		"/subcategories/" + url.PathEscape(sub) + "/products"
	return c.fetchProductList(ctx, op, path)
}

func (c Client) FetchMachinery(ctx context.Context) ([]domain.Machinery, error) {
	const op = "Client.FetchMachinery"

	var ms []machinery
	if err := c.get(ctx, "/v1/machinery", &ms); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs := make([]domain.Machinery, 0, len(ms))
	for _, m := range ms {
		vs = append(vs, m.toDomain())
	}
	return vs, nil
}

func (c Client) fetchProductList(
	ctx context.Context, op, path string,
) ([]domain.Product, error) {
	var ps []product
	if err := c.get(ctx, path, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		vs = append(vs, p.toDomain())
	}
	return vs, nil
}
