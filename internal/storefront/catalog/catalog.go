// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package catalog exposes the product browsing surface of the storefront.
//
// All catalog data lives in the commerce backend; this package reshapes it
// for the storefront, resolves relative image paths into absolute URLs, and
// normalizes category filters so they match regardless of casing or accents.
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/voltcart/pkg/pagination"
	"github.com/taibuivan/voltcart/pkg/slug"
)

// Product is the storefront view of a catalog product.
type Product struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MRPPrice        int      `json:"mrp_price"`
	SellingPrice    int      `json:"selling_price"`
	DiscountPercent int      `json:"discount_percent"`
	Quantity        int      `json:"quantity"`
	Color           string   `json:"color"`
	Brand           string   `json:"brand"`
	Images          []string `json:"images"`
	Category        string   `json:"category"`
}

// Category is a product grouping with its catalog size.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	ProductCount int    `json:"product_count"`
}

// Filter narrows a product listing. Zero values mean "no constraint".
type Filter struct {
	Category    string
	Brand       string
	Colors      []string
	MinPrice    int
	MaxPrice    int
	MinDiscount int
	Sort        string
	Page        int
}

// Query renders the filter into the backend's listing parameters.
//
// The category is slug-normalized before dispatch so "Summer Wear",
// "summer wear", and "summer-wear" select the same backend category. The
// backend pages from zero while the storefront pages from one, so the page
// number shifts down here.
func (filter Filter) Query() url.Values {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", slug.From(filter.Category))
	}
	if filter.Brand != "" {
		query.Set("brand", filter.Brand)
	}
	if len(filter.Colors) > 0 {
		query.Set("colors", strings.Join(filter.Colors, ","))
	}
	if filter.MinPrice > 0 {
		query.Set("minPrice", strconv.Itoa(filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		query.Set("maxPrice", strconv.Itoa(filter.MaxPrice))
	}
	if filter.MinDiscount > 0 {
		query.Set("minDiscount", strconv.Itoa(filter.MinDiscount))
	}
	if filter.Sort != "" {
		query.Set("sort", filter.Sort)
	}
	if page := (pagination.Params{Page: filter.Page}).UpstreamPage(); page > 0 {
		query.Set("pageNumber", strconv.Itoa(page))
	}
	return query
}
