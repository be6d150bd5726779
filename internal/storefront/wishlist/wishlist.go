// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package wishlist maintains the per-session wishlist view.
//
// It follows the same derived-state discipline as the cart: the backend owns
// the wishlist, mutations are written through first, and the cached view is
// replaced wholesale by a refetch. Membership checks (the filled-heart state
// on product views) are answered from the cached copy.
package wishlist

// Product is a wishlisted catalog product.
type Product struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	MRPPrice     int      `json:"mrp_price"`
	SellingPrice int      `json:"selling_price"`
	Color        string   `json:"color"`
	Images       []string `json:"images"`
	Category     string   `json:"category"`
}

// Wishlist is the session's wishlist view.
type Wishlist struct {
	Products []Product `json:"products"`
}

// Empty returns the wishlist every session starts from.
func Empty() *Wishlist {
	return &Wishlist{Products: []Product{}}
}

// Has reports whether the product is currently wishlisted.
func (w *Wishlist) Has(productID int64) bool {
	if w == nil {
		return false
	}
	for _, product := range w.Products {
		if product.ID == productID {
			return true
		}
	}
	return false
}
