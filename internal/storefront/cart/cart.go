// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cart maintains the per-session shopping cart view.
//
// The backend owns the cart; the gateway keeps a derived copy per session so
// browsing does not refetch it on every view. Every mutation is written
// through to the backend first, then the whole cart is refetched and the
// cached copy replaced. The cache is never patched in place, so it can drift
// from the backend for at most one mutation round-trip.
package cart

// Item is one cart line.
type Item struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	MRPPrice     int    `json:"mrp_price"`
	SellingPrice int    `json:"selling_price"`
}

// Cart is the session's cart with backend-computed totals.
//
// Totals are never recomputed at the gateway; they arrive with the refetch
// and are served as-is.
type Cart struct {
	Items             []Item `json:"items"`
	TotalItem         int    `json:"total_item"`
	TotalMRPPrice     int    `json:"total_mrp_price"`
	TotalSellingPrice int    `json:"total_selling_price"`
	Discount          int    `json:"discount"`
}

// Empty returns the cart every session starts from.
func Empty() *Cart {
	return &Cart{Items: []Item{}}
}
