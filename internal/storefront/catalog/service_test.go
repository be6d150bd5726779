// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	lastPath  string
	lastQuery url.Values
	payload   string
}

func (f *fakeBackend) Get(_ context.Context, path string, query url.Values, out any) error {
	f.lastPath = path
	f.lastQuery = query
	return json.Unmarshal([]byte(f.payload), out)
}

func newTestService(backend *fakeBackend) *Service {
	return NewService(backend, "https://shop.example.com", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListProductsNormalizesCategoryFilter(t *testing.T) {
	backend := &fakeBackend{payload: `{"content":[],"totalElements":0,"totalPages":0,"number":0,"size":20}`}
	service := newTestService(backend)

	_, _, err := service.ListProducts(context.Background(), Filter{Category: "Summer Wéar"})

	require.NoError(t, err)
	assert.Equal(t, "/products", backend.lastPath)
	assert.Equal(t, "summer-wear", backend.lastQuery.Get("category"))
}

func TestListProductsConvertsPageIndexing(t *testing.T) {
	backend := &fakeBackend{payload: `{"content":[],"totalElements":45,"totalPages":3,"number":1,"size":20}`}
	service := newTestService(backend)

	_, meta, err := service.ListProducts(context.Background(), Filter{Page: 2})

	require.NoError(t, err)
	// Gateway page 2 is backend page 1.
	assert.Equal(t, "1", backend.lastQuery.Get("pageNumber"))
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestListProductsOmitsEmptyFilters(t *testing.T) {
	backend := &fakeBackend{payload: `{"content":[]}`}
	service := newTestService(backend)

	_, _, err := service.ListProducts(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Empty(t, backend.lastQuery)
}

func TestGetProductResolvesImagePaths(t *testing.T) {
	backend := &fakeBackend{payload: `{
		"id": 7,
		"title": "Linen Shirt",
		"mrpPrice": 2000,
		"sellingPrice": 1500,
		"images": ["uploads/shirt-front.jpg", "https://cdn.example.com/shirt-back.jpg"],
		"category": {"id": 3, "categoryName": "Summer Wear"}
	}`}
	service := newTestService(backend)

	product, err := service.GetProduct(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "/products/7", backend.lastPath)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, "Summer Wear", product.Category)
	assert.Equal(t, []string{
		"https://shop.example.com/uploads/shirt-front.jpg",
		"https://cdn.example.com/shirt-back.jpg",
	}, product.Images)
}

func TestGetProductWithoutCategory(t *testing.T) {
	backend := &fakeBackend{payload: `{"id": 9, "title": "Mystery Box"}`}
	service := newTestService(backend)

	product, err := service.GetProduct(context.Background(), "9")

	require.NoError(t, err)
	assert.Empty(t, product.Category)
}

func TestSearchPassesQueryVerbatim(t *testing.T) {
	backend := &fakeBackend{payload: `[{"id": 1, "title": "Linen Shirt"}]`}
	service := newTestService(backend)

	products, err := service.Search(context.Background(), "linen shirt")

	require.NoError(t, err)
	assert.Equal(t, "/products/search", backend.lastPath)
	assert.Equal(t, "linen shirt", backend.lastQuery.Get("query"))
	require.Len(t, products, 1)
	assert.Equal(t, "Linen Shirt", products[0].Title)
}

func TestListCategoriesMapsBackendNames(t *testing.T) {
	backend := &fakeBackend{payload: `[
		{"id": 1, "categoryName": "Summer Wear", "imageUrl": "uploads/summer.jpg", "productCount": 12},
		{"id": 2, "categoryName": "Winter Wear", "imageUrl": "", "productCount": 4}
	]`}
	service := newTestService(backend)

	categories, err := service.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Summer Wear", categories[0].Name)
	assert.Equal(t, "https://shop.example.com/uploads/summer.jpg", categories[0].ImageURL)
	assert.Empty(t, categories[1].ImageURL)
	assert.Equal(t, 4, categories[1].ProductCount)
}
