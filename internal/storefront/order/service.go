// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/taibuivan/voltcart/pkg/slice"
)

// Backend is the slice of the upstream client the order history needs.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Put(ctx context.Context, path string, query url.Values, body, out any) error
}

type Service struct {
	api    Backend
	logger *slog.Logger
}

func NewService(api Backend, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// # Upstream Payloads

type springOrderItem struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	SellingPrice int    `json:"sellingPrice"`
	TotalPrice   int    `json:"totalPrice"`
}

type springOrder struct {
	ID                int64             `json:"id"`
	UserEmail         string            `json:"userEmail"`
	TotalSellingPrice int               `json:"totalSellingPrice"`
	TotalMRPPrice     int64             `json:"totalMrpPrice"`
	Discount          int               `json:"discount"`
	TotalItem         int               `json:"totalItem"`
	OrderStatus       string            `json:"orderStatus"`
	OrderDate         string            `json:"orderDate"`
	DeliveredDate     string            `json:"deliveredDate"`
	Items             []springOrderItem `json:"items"`
}

// # Operations

// History lists the shopper's orders, newest first as the backend returns them.
func (service *Service) History(ctx context.Context) ([]Order, error) {
	var payload []springOrder
	if err := service.api.Get(ctx, "/orders/user", nil, &payload); err != nil {
		return nil, err
	}

	orders := slice.Map(payload, toOrder)
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// Get fetches one order. The backend enforces ownership and answers 403 for
// another shopper's order; that status passes through untouched.
func (service *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	var payload springOrder
	if err := service.api.Get(ctx, "/orders/"+orderID, nil, &payload); err != nil {
		return nil, err
	}

	mapped := toOrder(payload)
	return &mapped, nil
}

// Cancel requests cancellation and returns the order in its new status.
func (service *Service) Cancel(ctx context.Context, orderID string) (*Order, error) {
	var payload springOrder
	if err := service.api.Put(ctx, "/orders/"+orderID+"/cancel", nil, nil, &payload); err != nil {
		return nil, err
	}

	mapped := toOrder(payload)
	return &mapped, nil
}

func toOrder(payload springOrder) Order {
	items := slice.Map(payload.Items, func(item springOrderItem) Item {
		return Item{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			SellingPrice: item.SellingPrice,
			TotalPrice:   item.TotalPrice,
		}
	})
	if items == nil {
		items = []Item{}
	}

	return Order{
		ID:                payload.ID,
		UserEmail:         payload.UserEmail,
		TotalSellingPrice: payload.TotalSellingPrice,
		TotalMRPPrice:     payload.TotalMRPPrice,
		Discount:          payload.Discount,
		TotalItem:         payload.TotalItem,
		Status:            payload.OrderStatus,
		OrderDate:         payload.OrderDate,
		DeliveredDate:     payload.DeliveredDate,
		Items:             items,
	}
}
