package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*CatalogService)(nil)

// CatalogService orchestrates catalog fetches for the page routes.
// Malformed or missing backend data degrades to empty collections.
type CatalogService struct {
	gateway port.CatalogGateway
	session port.SessionStore
	events  port.EventEmitter
}

func NewCatalogService(
	gateway port.CatalogGateway,
	session port.SessionStore,
	events port.EventEmitter,
) *CatalogService {
	return &CatalogService{gateway: gateway, session: session, events: events}
}

func (s *CatalogService) Home(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogService.Home"

	ps, err := s.gateway.FetchLatestProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogService.Products"

	ps, err := s.gateway.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s *CatalogService) Product(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "CatalogService.Product"

	p, err := s.gateway.FetchProductByID(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	userID, _ := s.session.UserID()
	evt := domain.ClientEvent{
		UserID:    userID,
		Type:      domain.EventProductViewed,
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.EffectivePrice(),
		Format:    p.MachineType,
		UnixTS:    time.Now().Unix(),
	}
	if err := s.events.Emit(ctx, evt); err != nil {
		slog.Warn("failed to emit client event", "op", op, "err", err)
	}

	return p, nil
}

func (s *CatalogService) SubCategories(
	ctx context.Context, category string,
) ([]string, error) {
	const op = "CatalogService.SubCategories"

	subs, err := s.gateway.FetchSubCategories(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

func (s *CatalogService) ProductsBySubCategory(
	ctx context.Context, category, sub string,
) ([]domain.Product, error) {
	const op = "CatalogService.ProductsBySubCategory"

	ps, err := s.gateway.FetchProductsBySubCategory(ctx, category, sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s *CatalogService) Machinery(ctx context.Context) ([]domain.Machinery, error) {
	const op = "CatalogService.Machinery"

	ms, err := s.gateway.FetchMachinery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ms, nil
}
