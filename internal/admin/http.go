// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/voltcart/internal/platform/request"
	"github.com/taibuivan/voltcart/internal/platform/respond"
	"github.com/taibuivan/voltcart/internal/storefront/catalog"
	"github.com/taibuivan/voltcart/pkg/convert"
	"github.com/taibuivan/voltcart/pkg/pagination"
	"github.com/taibuivan/voltcart/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes is the back-office surface for admins and super admins.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/dashboard/stats", handler.dashboardStats)
	router.Get("/dashboard/order-status", handler.orderStatusSummary)

	router.Route("/orders", func(r chi.Router) {
		r.Get("/", handler.listOrders)
		r.Get("/{orderID}", handler.getOrder)
		r.Put("/{orderID}/status", handler.updateOrderStatus)
	})

	router.Route("/products", func(r chi.Router) {
		r.Get("/", handler.listProducts)
		r.Post("/", handler.createProduct)
		r.Get("/{productID}", handler.getProduct)
		r.Put("/{productID}", handler.updateProduct)
		r.Delete("/{productID}", handler.deleteProduct)
		r.Patch("/{productID}/stock", handler.updateStock)
	})

	router.Route("/categories", func(r chi.Router) {
		r.Get("/", handler.listCategories)
		r.Post("/", handler.createCategory)
		r.Get("/{categoryID}", handler.getCategory)
		r.Put("/{categoryID}", handler.updateCategory)
		r.Delete("/{categoryID}", handler.deleteCategory)
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", handler.listUsers)
		r.Delete("/{userID}", handler.deleteUser)
	})

	router.Get("/profile", handler.profile)
	router.Put("/change-password", handler.changePassword)
	router.Get("/home-banners/products", handler.listBannerProducts)

	return router
}

// SuperAdminRoutes is the administrator roster surface. It mounts behind a
// stricter role gate than Routes.
func (handler *Handler) SuperAdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAdmins)
	router.Post("/", handler.createAdmin)
	router.Get("/{adminID}", handler.getAdmin)
	router.Put("/{adminID}", handler.updateAdmin)
	router.Delete("/{adminID}", handler.deleteAdmin)

	return router
}

// # Dashboard

func (handler *Handler) dashboardStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.DashboardStats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) orderStatusSummary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.OrderStatusSummary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

// # Orders

func (handler *Handler) listOrders(writer http.ResponseWriter, request *http.Request) {
	orders, err := handler.service.ListOrders(request.Context(), request.URL.Query().Get("status"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orders)
}

func (handler *Handler) getOrder(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetOrder(request.Context(), chi.URLParam(request, "orderID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) updateOrderStatus(writer http.ResponseWriter, request *http.Request) {
	updated, err := handler.service.UpdateOrderStatus(
		request.Context(),
		chi.URLParam(request, "orderID"),
		request.URL.Query().Get("status"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

// # Products

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()
	filter := catalog.Filter{
		Category:    params.Get("category"),
		Brand:       params.Get("brand"),
		Colors:      query.StringSlice(params.Get("colors")),
		MinPrice:    convert.ToInt(params.Get("min_price")),
		MaxPrice:    convert.ToInt(params.Get("max_price")),
		MinDiscount: convert.ToInt(params.Get("min_discount")),
		Sort:        params.Get("sort"),
		Page:        pagination.FromRequest(request).Page,
	}

	products, meta, err := handler.service.ListProducts(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, products, meta)
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.GetProduct(request.Context(), chi.URLParam(request, "productID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.CreateProduct(
		request.Context(),
		request.Header.Get("Content-Type"),
		request.Body,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, product)
}

func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.UpdateProduct(
		request.Context(),
		chi.URLParam(request, "productID"),
		request.Header.Get("Content-Type"),
		request.Body,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProduct(request.Context(), chi.URLParam(request, "productID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Product deleted successfully"})
}

func (handler *Handler) updateStock(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.UpdateStock(
		request.Context(),
		chi.URLParam(request, "productID"),
		convert.ToInt(request.URL.Query().Get("new_stock")),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

// # Categories

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategory(request.Context(), chi.URLParam(request, "categoryID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.CreateCategory(
		request.Context(),
		request.Header.Get("Content-Type"),
		request.Body,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.UpdateCategory(
		request.Context(),
		chi.URLParam(request, "categoryID"),
		request.Header.Get("Content-Type"),
		request.Body,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCategory(request.Context(), chi.URLParam(request, "categoryID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Category deleted successfully"})
}

// # Shoppers

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.service.DeleteUser(request.Context(), chi.URLParam(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": message})
}

// # Own Account

func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	account, err := handler.service.Profile(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	var input ChangePasswordInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.ChangePassword(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": message})
}

// # Roster (super admin)

func (handler *Handler) listAdmins(writer http.ResponseWriter, request *http.Request) {
	admins, err := handler.service.ListAdmins(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, admins)
}

func (handler *Handler) getAdmin(writer http.ResponseWriter, request *http.Request) {
	account, err := handler.service.GetAdmin(request.Context(), chi.URLParam(request, "adminID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) createAdmin(writer http.ResponseWriter, request *http.Request) {
	var input AccountInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.CreateAdmin(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, account)
}

func (handler *Handler) updateAdmin(writer http.ResponseWriter, request *http.Request) {
	var input AccountInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.UpdateAdmin(request.Context(), chi.URLParam(request, "adminID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) deleteAdmin(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteAdmin(request.Context(), chi.URLParam(request, "adminID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Admin deleted successfully"})
}

// # Banners

func (handler *Handler) listBannerProducts(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.service.ListBannerProducts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, products)
}
