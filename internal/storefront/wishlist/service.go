// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wishlist

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/taibuivan/voltcart/internal/session"
	"github.com/taibuivan/voltcart/pkg/slice"
)

// Backend is the slice of the upstream client the wishlist needs.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, query url.Values, body, out any) error
	Delete(ctx context.Context, path string, query url.Values, out any) error
}

// Service coordinates wishlist mutations against the backend.
//
// It runs the same two-phase mutation protocol as the cart service: write
// through, refetch, replace the cached view. The backend also returns the
// updated wishlist from its mutation endpoints, but that body is ignored —
// one reconciliation path is easier to trust than two.
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

type springWishlistProduct struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	MRPPrice     int      `json:"mrpPrice"`
	SellingPrice int      `json:"sellingPrice"`
	Color        string   `json:"color"`
	Images       []string `json:"images"`
	Category     string   `json:"category"`
}

type springWishlist struct {
	UserID   int64                   `json:"userId"`
	Products []springWishlistProduct `json:"products"`
}

// # Reads

// View returns the session's wishlist, serving the cached copy when present.
//
// Only ordinary shoppers have a backend wishlist; any other identity gets
// the empty view without an upstream call.
func (service *Service) View(ctx context.Context, current *session.Session, sessionID string) (*Wishlist, error) {
	if !current.IsAuthenticated() || current.Role != session.RoleUser {
		return Empty(), nil
	}

	if cached, err := service.cache.Get(ctx, sessionID); err == nil {
		return cached, nil
	}

	return service.reconcile(ctx, sessionID)
}

// Refresh bypasses the cache and rebuilds the view from the backend.
func (service *Service) Refresh(ctx context.Context, current *session.Session, sessionID string) (*Wishlist, error) {
	if !current.IsAuthenticated() || current.Role != session.RoleUser {
		return Empty(), nil
	}
	return service.reconcile(ctx, sessionID)
}

// # Mutations

// Add puts a product on the wishlist.
func (service *Service) Add(ctx context.Context, sessionID string, productID int64) (*Wishlist, error) {
	path := "/wishlist/" + strconv.FormatInt(productID, 10)

	if err := service.api.Post(ctx, path, nil, nil, nil); err != nil {
		return nil, err
	}

	return service.reconcileAfterWrite(ctx, sessionID)
}

// Remove takes a product off the wishlist.
func (service *Service) Remove(ctx context.Context, sessionID string, productID int64) (*Wishlist, error) {
	path := "/wishlist/" + strconv.FormatInt(productID, 10)

	if err := service.api.Delete(ctx, path, nil, nil); err != nil {
		return nil, err
	}

	return service.reconcileAfterWrite(ctx, sessionID)
}

// Toggle adds the product if absent, removes it if present, judged against
// the current view.
func (service *Service) Toggle(ctx context.Context, current *session.Session, sessionID string, productID int64) (*Wishlist, error) {
	view, err := service.View(ctx, current, sessionID)
	if err != nil {
		return nil, err
	}

	if view.Has(productID) {
		return service.Remove(ctx, sessionID, productID)
	}
	return service.Add(ctx, sessionID, productID)
}

// Reset drops the session's cached view. Wired into logout teardown.
func (service *Service) Reset(ctx context.Context, sessionID string) error {
	return service.cache.Reset(ctx, sessionID)
}

// # Reconciliation

func (service *Service) reconcile(ctx context.Context, sessionID string) (*Wishlist, error) {
	var payload springWishlist
	if err := service.api.Get(ctx, "/wishlist", nil, &payload); err != nil {
		return nil, err
	}

	fresh := toWishlist(payload)
	if err := service.cache.Put(ctx, sessionID, fresh); err != nil {
		service.logger.ErrorContext(ctx, "wishlist_cache_put_failed", slog.String("error", err.Error()))
	}

	return fresh, nil
}

func (service *Service) reconcileAfterWrite(ctx context.Context, sessionID string) (*Wishlist, error) {
	fresh, err := service.reconcile(ctx, sessionID)
	if err != nil {
		if resetErr := service.cache.Reset(ctx, sessionID); resetErr != nil {
			service.logger.ErrorContext(ctx, "wishlist_cache_reset_failed", slog.String("error", resetErr.Error()))
		}
		return nil, err
	}
	return fresh, nil
}

func toWishlist(payload springWishlist) *Wishlist {
	products := slice.Map(payload.Products, func(p springWishlistProduct) Product {
		return Product{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			MRPPrice:     p.MRPPrice,
			SellingPrice: p.SellingPrice,
			Color:        p.Color,
			Images:       p.Images,
			Category:     p.Category,
		}
	})
	if products == nil {
		products = []Product{}
	}

	return &Wishlist{Products: products}
}
