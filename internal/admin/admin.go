// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package admin proxies the back-office surface: dashboard figures, the
// full product and category CRUD (image uploads included), order status
// management, shopper accounts, and the super-admin roster.
//
// Everything here is a thin, typed passthrough. The backend owns the data
// and the authorization of individual records; the gateway contributes the
// session, the role gate in front of the routes, and input validation so
// obviously bad requests never leave the edge.
package admin

// DashboardStats carries the headline numbers for the dashboard cards.
type DashboardStats struct {
	TotalUsers           float64 `json:"total_users"`
	TotalOrders          float64 `json:"total_orders"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalProducts        float64 `json:"total_products"`
	TotalCancelledOrders float64 `json:"total_cancelled_orders"`
	TotalRefundAmount    float64 `json:"total_refund_amount"`
	TotalCategories      float64 `json:"total_categories"`
}

// Order is the compact row the order management table renders.
type Order struct {
	ID                int64  `json:"id"`
	UserEmail         string `json:"user_email"`
	TotalItem         int    `json:"total_item"`
	TotalSellingPrice int64  `json:"total_selling_price"`
	Status            string `json:"status"`
	OrderDate         string `json:"order_date"`
}

// OrderItem is a line inside an order detail.
type OrderItem struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	MRPPrice     int64  `json:"mrp_price"`
	SellingPrice int64  `json:"selling_price"`
}

// OrderDetail is the full order view for the detail drawer.
type OrderDetail struct {
	ID                int64       `json:"id"`
	Status            string      `json:"status"`
	Items             []OrderItem `json:"items"`
	TotalItem         int         `json:"total_item"`
	TotalMRPPrice     int64       `json:"total_mrp_price"`
	TotalSellingPrice int64       `json:"total_selling_price"`
	Discount          int         `json:"discount"`
	OrderDate         string      `json:"order_date"`
	DeliveredDate     string      `json:"delivered_date,omitempty"`
}

// Product is the admin-side product view. Unlike the storefront view it
// exposes the raw stored image paths so the console can edit them.
type Product struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MRPPrice        int64    `json:"mrp_price"`
	SellingPrice    int64    `json:"selling_price"`
	DiscountPercent int      `json:"discount_percent"`
	Quantity        int      `json:"quantity"`
	Color           string   `json:"color"`
	Brand           string   `json:"brand"`
	Images          []string `json:"images"`
	Category        string   `json:"category"`
}

// Category is the admin-side category view.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	ProductCount int    `json:"product_count"`
}

// UserSummary is one row of the shopper roster.
type UserSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Account is the signed-in administrator's own profile.
type Account struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AccountInput creates or updates an administrator. Password is required
// on create and optional on update.
type AccountInput struct {
	AdminName string `json:"adminName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

// ChangePasswordInput rotates the administrator's own password.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// BannerProduct is the id/title pair the home banner picker lists.
type BannerProduct struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// orderStatuses is the backend's order state enum. Statuses travel as
// strings on the wire, so the gateway screens them before forwarding.
var orderStatuses = map[string]struct{}{
	"PENDING":   {},
	"PLACED":    {},
	"CONFIRMED": {},
	"SHIPPED":   {},
	"DELIVERED": {},
	"CANCELLED": {},
}

// ValidOrderStatus reports whether status is one the backend understands.
func ValidOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}
