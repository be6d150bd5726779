// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/voltcart/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/voltcart/internal/platform/request"
	"github.com/taibuivan/voltcart/internal/platform/respond"
	"github.com/taibuivan/voltcart/internal/platform/validate"
	"github.com/taibuivan/voltcart/internal/session"
	"github.com/taibuivan/voltcart/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.view)
	router.Post("/items", handler.addItem)
	router.Put("/items/{itemID}", handler.updateItem)
	router.Delete("/items/{itemID}", handler.removeItem)
	router.Delete("/", handler.clear)

	return router
}

func (handler *Handler) view(writer http.ResponseWriter, request *http.Request) {
	current := session.FromContext(request.Context())
	sessionID := ctxutil.GetSessionID(request.Context())

	view, err := handler.service.View(request.Context(), current, sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

type addItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	var input addItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Custom("product_id", input.ProductID <= 0, "A product is required").
		Custom("quantity", input.Quantity <= 0, "Quantity must be positive")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID := ctxutil.GetSessionID(request.Context())
	view, err := handler.service.AddItem(request.Context(), sessionID, input.ProductID, input.Quantity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

type updateItemInput struct {
	Quantity int `json:"quantity"`
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	var input updateItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Custom("quantity", input.Quantity <= 0, "Quantity must be positive")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID := int64(convert.ToInt(chi.URLParam(request, "itemID")))
	sessionID := ctxutil.GetSessionID(request.Context())

	view, err := handler.service.UpdateItem(request.Context(), sessionID, itemID, input.Quantity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	itemID := int64(convert.ToInt(chi.URLParam(request, "itemID")))
	sessionID := ctxutil.GetSessionID(request.Context())

	view, err := handler.service.RemoveItem(request.Context(), sessionID, itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	sessionID := ctxutil.GetSessionID(request.Context())

	view, err := handler.service.Clear(request.Context(), sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}
