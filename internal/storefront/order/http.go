// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/voltcart/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.history)
	router.Get("/{orderID}", handler.get)
	router.Put("/{orderID}/cancel", handler.cancel)

	return router
}

func (handler *Handler) history(writer http.ResponseWriter, request *http.Request) {
	orders, err := handler.service.History(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orders)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	placed, err := handler.service.Get(request.Context(), chi.URLParam(request, "orderID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, placed)
}

func (handler *Handler) cancel(writer http.ResponseWriter, request *http.Request) {
	canceled, err := handler.service.Cancel(request.Context(), chi.URLParam(request, "orderID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, canceled)
}
