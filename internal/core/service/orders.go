package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.OrdersProvider = (*OrdersService)(nil)

var ErrNotAuthenticated = errors.New("not authenticated")

// OrdersService serves the account area: order history and
// purchased design downloads. Both require a session.
type OrdersService struct {
	gateway port.OrdersGateway
	session port.SessionStore
}

func NewOrdersService(
	gateway port.OrdersGateway, session port.SessionStore,
) *OrdersService {
	return &OrdersService{gateway: gateway, session: session}
}

func (s *OrdersService) Orders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrdersService.Orders"

	userID, ok := s.session.UserID()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotAuthenticated)
	}

	os, err := s.gateway.FetchOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return os, nil
}

func (s *OrdersService) Downloads(ctx context.Context) ([]domain.Download, error) {
	const op = "OrdersService.Downloads"

	userID, ok := s.session.UserID()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotAuthenticated)
	}

	ds, err := s.gateway.FetchDownloads(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ds, nil
}
