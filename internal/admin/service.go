// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
	"github.com/taibuivan/voltcart/internal/platform/validate"
	"github.com/taibuivan/voltcart/internal/storefront/catalog"
	"github.com/taibuivan/voltcart/pkg/pagination"
	"github.com/taibuivan/voltcart/pkg/pointer"
	"github.com/taibuivan/voltcart/pkg/slice"
)

// Backend is the slice of the upstream client the back office needs. It is
// the widest backend interface in the gateway: the console reads, writes,
// and uploads files.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, query url.Values, body, out any) error
	Put(ctx context.Context, path string, query url.Values, body, out any) error
	Patch(ctx context.Context, path string, query url.Values, body, out any) error
	Delete(ctx context.Context, path string, query url.Values, out any) error
	Multipart(ctx context.Context, method, path, contentType string, body io.Reader, out any) error
}

type Service struct {
	api    Backend
	logger *slog.Logger
}

func NewService(api Backend, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// # Upstream Payloads

type springStats struct {
	TotalUsers           float64 `json:"totalUsers"`
	TotalOrders          float64 `json:"totalOrders"`
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalProducts        float64 `json:"totalProducts"`
	TotalCancelledOrders float64 `json:"totalCancelledOrders"`
	TotalRefundAmount    float64 `json:"totalRefundAmount"`
	TotalCategories      float64 `json:"totalCategories"`
}

type springOrderRow struct {
	ID                int64  `json:"id"`
	UserEmail         string `json:"userEmail"`
	TotalItem         int    `json:"totalItem"`
	TotalSellingPrice int64  `json:"totalSellingPrice"`
	OrderStatus       string `json:"orderStatus"`
	OrderDate         string `json:"orderDate"`
}

type springOrderItem struct {
	ID           int64 `json:"id"`
	Quantity     int   `json:"quantity"`
	MRPPrice     int64 `json:"mrpPrice"`
	SellingPrice int64 `json:"sellingPrice"`
	Product      struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	} `json:"product"`
}

type springOrderDetail struct {
	ID                int64             `json:"id"`
	OrderStatus       string            `json:"orderStatus"`
	OrderItems        []springOrderItem `json:"orderItems"`
	TotalItem         int               `json:"totalItem"`
	TotalMRPPrice     int64             `json:"totalMrpPrice"`
	TotalSellingPrice int64             `json:"totalSellingPrice"`
	Discount          int               `json:"discount"`
	OrderDate         string            `json:"orderDate"`
	DeliveredDate     string            `json:"deliveredDate"`
}

type springProduct struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MRPPrice        int64    `json:"mrpPrice"`
	SellingPrice    int64    `json:"sellingPrice"`
	DiscountPercent int      `json:"discountPercent"`
	Quantity        int      `json:"quantity"`
	Color           string   `json:"color"`
	Brand           string   `json:"brand"`
	Images          []string `json:"images"`
	Category        *struct {
		CategoryName string `json:"categoryName"`
	} `json:"category"`
}

type springProductPage struct {
	Content       []springProduct `json:"content"`
	TotalElements int             `json:"totalElements"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
}

type springCategory struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
	ImageURL     string `json:"imageUrl"`
	ProductCount int    `json:"productCount"`
}

type springUserSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type springAdmin struct {
	ID        int64  `json:"id"`
	AdminName string `json:"adminName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type springBannerProduct struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// # Dashboard

// DashboardStats fetches the headline numbers for the dashboard cards.
func (service *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var payload springStats
	if err := service.api.Get(ctx, "/admin/dashboard/stats", nil, &payload); err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalUsers:           payload.TotalUsers,
		TotalOrders:          payload.TotalOrders,
		TotalRevenue:         payload.TotalRevenue,
		TotalProducts:        payload.TotalProducts,
		TotalCancelledOrders: payload.TotalCancelledOrders,
		TotalRefundAmount:    payload.TotalRefundAmount,
		TotalCategories:      payload.TotalCategories,
	}, nil
}

// OrderStatusSummary fetches the per-status order counts the pie chart plots.
func (service *Service) OrderStatusSummary(ctx context.Context) (map[string]int64, error) {
	payload := map[string]int64{}
	if err := service.api.Get(ctx, "/admin/dashboard/order-status", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// # Orders

// ListOrders fetches every order, optionally narrowed to one status.
func (service *Service) ListOrders(ctx context.Context, status string) ([]Order, error) {
	path := "/admin/orders"
	if status != "" {
		if !ValidOrderStatus(status) {
			return nil, apperr.ValidationError("Unknown order status: " + status)
		}
		path = "/admin/orders/status/" + status
	}

	var payload []springOrderRow
	if err := service.api.Get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return slice.Map(payload, toOrderRow), nil
}

// GetOrder fetches the full detail of one order.
func (service *Service) GetOrder(ctx context.Context, orderID string) (*OrderDetail, error) {
	var payload springOrderDetail
	if err := service.api.Get(ctx, "/admin/orders/"+orderID, nil, &payload); err != nil {
		return nil, err
	}
	return toOrderDetail(payload), nil
}

// UpdateOrderStatus moves an order to a new state.
func (service *Service) UpdateOrderStatus(ctx context.Context, orderID, status string) (*Order, error) {
	if !ValidOrderStatus(status) {
		return nil, apperr.ValidationError("Unknown order status: " + status)
	}

	query := url.Values{}
	query.Set("status", status)

	var payload springOrderRow
	if err := service.api.Put(ctx, "/admin/orders/"+orderID+"/status", query, nil, &payload); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "order_status_updated",
		slog.String("order_id", orderID),
		slog.String("status", status),
	)
	row := toOrderRow(payload)
	return &row, nil
}

// # Products

// ListProducts fetches one admin page of products. The filter grammar is
// shared with the public catalog.
func (service *Service) ListProducts(ctx context.Context, filter catalog.Filter) ([]Product, pagination.Meta, error) {
	var page springProductPage
	if err := service.api.Get(ctx, "/admin/products", filter.Query(), &page); err != nil {
		return nil, pagination.Meta{}, err
	}

	products := slice.Map(page.Content, toProduct)
	meta := pagination.NewMeta(page.Number+1, page.Size, page.TotalElements)
	return products, meta, nil
}

// GetProduct fetches one product for the edit form.
func (service *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var payload springProduct
	if err := service.api.Get(ctx, "/admin/products/"+id, nil, &payload); err != nil {
		return nil, err
	}
	product := toProduct(payload)
	return &product, nil
}

// CreateProduct forwards a multipart create (product JSON part plus image
// parts) to the backend untouched.
func (service *Service) CreateProduct(ctx context.Context, contentType string, body io.Reader) (*Product, error) {
	var payload springProduct
	if err := service.api.Multipart(ctx, "POST", "/admin/products", contentType, body, &payload); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "product_created", slog.Int64("product_id", payload.ID))
	product := toProduct(payload)
	return &product, nil
}

// UpdateProduct forwards a multipart update for one product.
func (service *Service) UpdateProduct(ctx context.Context, id, contentType string, body io.Reader) (*Product, error) {
	var payload springProduct
	if err := service.api.Multipart(ctx, "PUT", "/admin/products/"+id, contentType, body, &payload); err != nil {
		return nil, err
	}
	product := toProduct(payload)
	return &product, nil
}

// DeleteProduct removes a product from the catalog.
func (service *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := service.api.Delete(ctx, "/admin/products/"+id, nil, nil); err != nil {
		return err
	}
	service.logger.InfoContext(ctx, "product_deleted", slog.String("product_id", id))
	return nil
}

// UpdateStock sets a product's stock level.
func (service *Service) UpdateStock(ctx context.Context, id string, newStock int) (*Product, error) {
	if newStock < 0 {
		return nil, apperr.ValidationError("Stock cannot be negative")
	}

	query := url.Values{}
	query.Set("newStock", strconv.Itoa(newStock))

	var payload springProduct
	if err := service.api.Patch(ctx, "/admin/products/"+id+"/stock", query, nil, &payload); err != nil {
		return nil, err
	}
	product := toProduct(payload)
	return &product, nil
}

// # Categories

// ListCategories fetches every category.
func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var payload []springCategory
	if err := service.api.Get(ctx, "/admin/categories", nil, &payload); err != nil {
		return nil, err
	}
	return slice.Map(payload, toCategory), nil
}

// GetCategory fetches one category for the edit form.
func (service *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	var payload springCategory
	if err := service.api.Get(ctx, "/admin/categories/"+id, nil, &payload); err != nil {
		return nil, err
	}
	category := toCategory(payload)
	return &category, nil
}

// CreateCategory forwards a multipart create (category JSON part plus one
// image part).
func (service *Service) CreateCategory(ctx context.Context, contentType string, body io.Reader) (*Category, error) {
	var payload springCategory
	if err := service.api.Multipart(ctx, "POST", "/admin/categories", contentType, body, &payload); err != nil {
		return nil, err
	}
	category := toCategory(payload)
	return &category, nil
}

// UpdateCategory forwards a multipart update for one category.
func (service *Service) UpdateCategory(ctx context.Context, id, contentType string, body io.Reader) (*Category, error) {
	var payload springCategory
	if err := service.api.Multipart(ctx, "PUT", "/admin/categories/"+id, contentType, body, &payload); err != nil {
		return nil, err
	}
	category := toCategory(payload)
	return &category, nil
}

// DeleteCategory removes a category.
func (service *Service) DeleteCategory(ctx context.Context, id string) error {
	return service.api.Delete(ctx, "/admin/categories/"+id, nil, nil)
}

// # Shoppers

// ListUsers fetches the shopper roster.
func (service *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	var payload []springUserSummary
	if err := service.api.Get(ctx, "/admin/users", nil, &payload); err != nil {
		return nil, err
	}
	return slice.Map(payload, func(u springUserSummary) UserSummary {
		return UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email}
	}), nil
}

// DeleteUser removes a shopper account.
func (service *Service) DeleteUser(ctx context.Context, userID string) (string, error) {
	var payload messageResponse
	if err := service.api.Delete(ctx, "/admin/users/"+userID, nil, &payload); err != nil {
		return "", err
	}

	service.logger.InfoContext(ctx, "shopper_deleted", slog.String("user_id", userID))
	return payload.Message, nil
}

// # Own Account

// Profile fetches the signed-in administrator's own profile.
func (service *Service) Profile(ctx context.Context) (*Account, error) {
	var payload springAdmin
	if err := service.api.Get(ctx, "/admin/profile", nil, &payload); err != nil {
		return nil, err
	}
	account := toAccount(payload)
	return &account, nil
}

// ChangePassword rotates the administrator's own password.
func (service *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) (string, error) {
	validator := &validate.Validator{}
	validator.
		Required("oldPassword", input.OldPassword).
		Required("newPassword", input.NewPassword)
	if err := validator.Err(); err != nil {
		return "", err
	}

	var payload messageResponse
	if err := service.api.Put(ctx, "/admin/change-password", nil, input, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

// # Roster (super admin)

// ListAdmins fetches every administrator account.
func (service *Service) ListAdmins(ctx context.Context) ([]Account, error) {
	var payload []springAdmin
	if err := service.api.Get(ctx, "/super-admin/admins", nil, &payload); err != nil {
		return nil, err
	}
	return slice.Map(payload, toAccount), nil
}

// GetAdmin fetches one administrator account.
func (service *Service) GetAdmin(ctx context.Context, id string) (*Account, error) {
	var payload springAdmin
	if err := service.api.Get(ctx, "/super-admin/admins/"+id, nil, &payload); err != nil {
		return nil, err
	}
	account := toAccount(payload)
	return &account, nil
}

// CreateAdmin provisions a new administrator.
func (service *Service) CreateAdmin(ctx context.Context, input AccountInput) (*Account, error) {
	if err := validateAccountInput(input, true); err != nil {
		return nil, err
	}

	var payload springAdmin
	if err := service.api.Post(ctx, "/super-admin/admins", nil, input, &payload); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "admin_created", slog.Int64("admin_id", payload.ID))
	account := toAccount(payload)
	return &account, nil
}

// UpdateAdmin edits an administrator. A blank password leaves the current
// one in place.
func (service *Service) UpdateAdmin(ctx context.Context, id string, input AccountInput) (*Account, error) {
	if err := validateAccountInput(input, false); err != nil {
		return nil, err
	}

	var payload springAdmin
	if err := service.api.Put(ctx, "/super-admin/admins/"+id, nil, input, &payload); err != nil {
		return nil, err
	}
	account := toAccount(payload)
	return &account, nil
}

// DeleteAdmin removes an administrator account.
func (service *Service) DeleteAdmin(ctx context.Context, id string) error {
	if err := service.api.Delete(ctx, "/super-admin/admins/"+id, nil, nil); err != nil {
		return err
	}
	service.logger.InfoContext(ctx, "admin_deleted", slog.String("admin_id", id))
	return nil
}

// # Banners

// ListBannerProducts fetches the id/title pairs the banner picker shows.
func (service *Service) ListBannerProducts(ctx context.Context) ([]BannerProduct, error) {
	var payload []springBannerProduct
	if err := service.api.Get(ctx, "/admin/home-banners/products", nil, &payload); err != nil {
		return nil, err
	}
	return slice.Map(payload, func(p springBannerProduct) BannerProduct {
		return BannerProduct{ID: p.ID, Title: p.Title}
	}), nil
}

// # View Mapping

func validateAccountInput(input AccountInput, passwordRequired bool) error {
	validator := &validate.Validator{}
	validator.
		Required("adminName", input.AdminName).
		Required("email", input.Email).
		Email("email", input.Email)
	if passwordRequired {
		validator.Required("password", input.Password)
	}
	return validator.Err()
}

func toOrderRow(row springOrderRow) Order {
	return Order{
		ID:                row.ID,
		UserEmail:         row.UserEmail,
		TotalItem:         row.TotalItem,
		TotalSellingPrice: row.TotalSellingPrice,
		Status:            row.OrderStatus,
		OrderDate:         row.OrderDate,
	}
}

func toOrderDetail(detail springOrderDetail) *OrderDetail {
	items := slice.Map(detail.OrderItems, func(item springOrderItem) OrderItem {
		return OrderItem{
			ID:           item.ID,
			ProductID:    item.Product.ID,
			ProductName:  item.Product.Title,
			Quantity:     item.Quantity,
			MRPPrice:     item.MRPPrice,
			SellingPrice: item.SellingPrice,
		}
	})
	if items == nil {
		items = []OrderItem{}
	}

	return &OrderDetail{
		ID:                detail.ID,
		Status:            detail.OrderStatus,
		Items:             items,
		TotalItem:         detail.TotalItem,
		TotalMRPPrice:     detail.TotalMRPPrice,
		TotalSellingPrice: detail.TotalSellingPrice,
		Discount:          detail.Discount,
		OrderDate:         detail.OrderDate,
		DeliveredDate:     detail.DeliveredDate,
	}
}

func toProduct(p springProduct) Product {
	images := p.Images
	if images == nil {
		images = []string{}
	}

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
		Images:          images,
		Category:        pointer.Val(p.Category).CategoryName,
	}
}

func toCategory(c springCategory) Category {
	return Category{
		ID:           c.ID,
		Name:         c.CategoryName,
		ImageURL:     c.ImageURL,
		ProductCount: c.ProductCount,
	}
}

func toAccount(a springAdmin) Account {
	return Account{
		ID:    a.ID,
		Name:  a.AdminName,
		Email: a.Email,
		Role:  a.Role,
	}
}
