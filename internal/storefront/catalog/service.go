// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/taibuivan/voltcart/pkg/pagination"
	"github.com/taibuivan/voltcart/pkg/pointer"
	"github.com/taibuivan/voltcart/pkg/slice"
)

// Backend is the slice of the upstream client the catalog needs.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

type Service struct {
	api          Backend
	assetBaseURL string
	logger       *slog.Logger
}

func NewService(api Backend, assetBaseURL string, logger *slog.Logger) *Service {
	return &Service{
		api:          api,
		assetBaseURL: strings.TrimRight(assetBaseURL, "/"),
		logger:       logger,
	}
}

// # Upstream Payloads

// springProduct mirrors the backend's product serialization.
type springProduct struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	MRPPrice        int             `json:"mrpPrice"`
	SellingPrice    int             `json:"sellingPrice"`
	DiscountPercent int             `json:"discountPercent"`
	Quantity        int             `json:"quantity"`
	Color           string          `json:"color"`
	Brand           string          `json:"brand"`
	Images          []string        `json:"images"`
	Category        *springCategory `json:"category"`
}

type springCategory struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
	ImageURL     string `json:"imageUrl"`
	ProductCount int    `json:"productCount"`
}

// springPage mirrors a Spring Data page envelope.
type springPage struct {
	Content       []springProduct `json:"content"`
	TotalElements int             `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
}

// # Listing & Lookup

// ListProducts fetches one page of filtered products.
func (service *Service) ListProducts(ctx context.Context, filter Filter) ([]Product, pagination.Meta, error) {
	var page springPage
	if err := service.api.Get(ctx, "/products", filter.Query(), &page); err != nil {
		return nil, pagination.Meta{}, err
	}

	products := slice.Map(page.Content, service.toProduct)
	meta := pagination.NewMeta(page.Number+1, page.Size, page.TotalElements)
	return products, meta, nil
}

// GetProduct fetches a single product by its backend identifier.
func (service *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var payload springProduct
	if err := service.api.Get(ctx, "/products/"+id, nil, &payload); err != nil {
		return nil, err
	}

	product := service.toProduct(payload)
	return &product, nil
}

// Search performs a free-text product search.
func (service *Service) Search(ctx context.Context, term string) ([]Product, error) {
	query := url.Values{}
	query.Set("query", term)

	var payload []springProduct
	if err := service.api.Get(ctx, "/products/search", query, &payload); err != nil {
		return nil, err
	}

	return slice.Map(payload, service.toProduct), nil
}

// ListCategories fetches all product categories.
func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var payload []springCategory
	if err := service.api.Get(ctx, "/products/categories", nil, &payload); err != nil {
		return nil, err
	}

	return slice.Map(payload, func(c springCategory) Category {
		return Category{
			ID:           c.ID,
			Name:         c.CategoryName,
			ImageURL:     service.resolveImage(c.ImageURL),
			ProductCount: c.ProductCount,
		}
	}), nil
}

// # View Mapping

func (service *Service) toProduct(p springProduct) Product {
	return Product{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		MRPPrice:        p.MRPPrice,
		SellingPrice:    p.SellingPrice,
		DiscountPercent: p.DiscountPercent,
		Quantity:        p.Quantity,
		Color:           p.Color,
		Brand:           p.Brand,
		Images:          slice.Map(p.Images, service.resolveImage),
		Category:        pointer.Val(p.Category).CategoryName,
	}
}

// resolveImage turns a backend-relative image path into an absolute URL.
// Paths that are already absolute pass through untouched.
func (service *Service) resolveImage(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return service.assetBaseURL + "/" + strings.TrimLeft(path, "/")
}
