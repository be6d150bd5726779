// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/voltcart/internal/platform/respond"
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

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Get("/search", handler.searchProducts)
	router.Get("/categories", handler.listCategories)
	router.Get("/{id}", handler.getProduct)

	return router
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()
	filter := Filter{
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

func (handler *Handler) searchProducts(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.service.Search(request.Context(), request.URL.Query().Get("query"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, products)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.GetProduct(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}
