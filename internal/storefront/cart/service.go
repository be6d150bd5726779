// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/taibuivan/voltcart/internal/session"
	"github.com/taibuivan/voltcart/pkg/slice"
)

// Backend is the slice of the upstream client the cart needs.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, query url.Values, body, out any) error
	Put(ctx context.Context, path string, query url.Values, body, out any) error
	Delete(ctx context.Context, path string, query url.Values, out any) error
}

// Service coordinates cart mutations against the backend and keeps the
// per-session cached view consistent.
//
// # Mutation Protocol
//
// Every mutation runs the same two phases:
//  1. Write: the mutation endpoint is called. Its response body is ignored.
//  2. Reconcile: the full cart is refetched and the cached view replaced.
//
// If the write fails the cache keeps its previous content. If the write
// succeeds but the reconcile fails, the cache is dropped entirely so a
// stale view is never served after a known mutation.
type Service struct {
	api    Backend
	cache  CacheStore
	logger *slog.Logger
}

func NewService(api Backend, cache CacheStore, logger *slog.Logger) *Service {
	return &Service{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

// # Upstream Payloads

type springCartItem struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
	Product  struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	} `json:"product"`
	MRPPrice     int `json:"mrpPrice"`
	SellingPrice int `json:"sellingPrice"`
}

type springCart struct {
	CartItems         []springCartItem `json:"cartItems"`
	TotalItem         int              `json:"totalItem"`
	TotalMRPPrice     int              `json:"totalMrpPrice"`
	TotalSellingPrice int              `json:"totalSellingPrice"`
	Discount          int              `json:"discount"`
}

// # Reads

// View returns the session's cart, serving the cached copy when present.
//
// Only ordinary shoppers have a backend cart. For any other identity the
// empty cart is returned without touching the backend.
func (service *Service) View(ctx context.Context, current *session.Session, sessionID string) (*Cart, error) {
	if !current.IsAuthenticated() || current.Role != session.RoleUser {
		return Empty(), nil
	}

	if cached, err := service.cache.Get(ctx, sessionID); err == nil {
		return cached, nil
	}

	return service.reconcile(ctx, sessionID)
}

// Refresh bypasses the cache and rebuilds the view from the backend.
func (service *Service) Refresh(ctx context.Context, current *session.Session, sessionID string) (*Cart, error) {
	if !current.IsAuthenticated() || current.Role != session.RoleUser {
		return Empty(), nil
	}
	return service.reconcile(ctx, sessionID)
}

// # Mutations

// AddItem puts quantity units of a product into the cart.
func (service *Service) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*Cart, error) {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}
	if err := service.api.Post(ctx, "/user/cart/add", nil, body, nil); err != nil {
		return nil, err
	}

	return service.reconcileAfterWrite(ctx, sessionID)
}

// UpdateItem sets the quantity of an existing cart line.
func (service *Service) UpdateItem(ctx context.Context, sessionID string, itemID int64, quantity int) (*Cart, error) {
	body := map[string]any{"quantity": quantity}
	path := "/user/cart/item/" + strconv.FormatInt(itemID, 10)

	if err := service.api.Put(ctx, path, nil, body, nil); err != nil {
		return nil, err
	}

	return service.reconcileAfterWrite(ctx, sessionID)
}

// RemoveItem deletes a cart line.
func (service *Service) RemoveItem(ctx context.Context, sessionID string, itemID int64) (*Cart, error) {
	path := "/user/cart/item/" + strconv.FormatInt(itemID, 10)

	if err := service.api.Delete(ctx, path, nil, nil); err != nil {
		return nil, err
	}

	return service.reconcileAfterWrite(ctx, sessionID)
}

// Clear empties the cart entirely.
func (service *Service) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	if err := service.api.Delete(ctx, "/user/cart/clear", nil, nil); err != nil {
		return nil, err
	}

	return service.reconcileAfterWrite(ctx, sessionID)
}

// Reset drops the session's cached view. Wired into logout teardown.
func (service *Service) Reset(ctx context.Context, sessionID string) error {
	return service.cache.Reset(ctx, sessionID)
}

// # Reconciliation

// reconcile refetches the cart and replaces the cached view.
func (service *Service) reconcile(ctx context.Context, sessionID string) (*Cart, error) {
	var payload springCart
	if err := service.api.Get(ctx, "/user/cart", nil, &payload); err != nil {
		return nil, err
	}

	fresh := toCart(payload)
	if err := service.cache.Put(ctx, sessionID, fresh); err != nil {
		// Serving the fresh view matters more than caching it.
		service.logger.ErrorContext(ctx, "cart_cache_put_failed", slog.String("error", err.Error()))
	}

	return fresh, nil
}

// reconcileAfterWrite is reconcile for the post-mutation phase: the backend
// already applied the write, so on refetch failure the stale cache must go.
func (service *Service) reconcileAfterWrite(ctx context.Context, sessionID string) (*Cart, error) {
	fresh, err := service.reconcile(ctx, sessionID)
	if err != nil {
		if resetErr := service.cache.Reset(ctx, sessionID); resetErr != nil {
			service.logger.ErrorContext(ctx, "cart_cache_reset_failed", slog.String("error", resetErr.Error()))
		}
		return nil, err
	}
	return fresh, nil
}

func toCart(payload springCart) *Cart {
	items := slice.Map(payload.CartItems, func(item springCartItem) Item {
		return Item{
			ID:           item.ID,
			ProductID:    item.Product.ID,
			ProductName:  item.Product.Title,
			Quantity:     item.Quantity,
			MRPPrice:     item.MRPPrice,
			SellingPrice: item.SellingPrice,
		}
	})
	if items == nil {
		items = []Item{}
	}

	return &Cart{
		Items:             items,
		TotalItem:         payload.TotalItem,
		TotalMRPPrice:     payload.TotalMRPPrice,
		TotalSellingPrice: payload.TotalSellingPrice,
		Discount:          payload.Discount,
	}
}
