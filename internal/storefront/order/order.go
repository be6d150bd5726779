// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package order exposes the shopper's order history.
//
// Orders are never cached: they change server-side (status transitions,
// delivery) without any gateway-visible mutation, so every view refetches.
package order

// Item is one ordered product line.
type Item struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	SellingPrice int    `json:"selling_price"`
	TotalPrice   int    `json:"total_price"`
}

// Order is one placed order with its backend-computed totals and status.
//
// Dates pass through as the backend renders them; the gateway does not
// parse or reformat timestamps it never produces.
type Order struct {
	ID                int64  `json:"id"`
	UserEmail         string `json:"user_email"`
	TotalSellingPrice int    `json:"total_selling_price"`
	TotalMRPPrice     int64  `json:"total_mrp_price"`
	Discount          int    `json:"discount"`
	TotalItem         int    `json:"total_item"`
	Status            string `json:"status"`
	OrderDate         string `json:"order_date"`
	DeliveredDate     string `json:"delivered_date,omitempty"`
	Items             []Item `json:"items"`
}
