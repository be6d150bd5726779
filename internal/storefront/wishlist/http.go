// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wishlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/voltcart/internal/platform/ctxutil"
	"github.com/taibuivan/voltcart/internal/platform/respond"
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
	router.Post("/{productID}", handler.add)
	router.Delete("/{productID}", handler.remove)
	router.Post("/{productID}/toggle", handler.toggle)

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

func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	productID := int64(convert.ToInt(chi.URLParam(request, "productID")))
	sessionID := ctxutil.GetSessionID(request.Context())

	view, err := handler.service.Add(request.Context(), sessionID, productID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, view)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	productID := int64(convert.ToInt(chi.URLParam(request, "productID")))
	sessionID := ctxutil.GetSessionID(request.Context())

	view, err := handler.service.Remove(request.Context(), sessionID, productID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	current := session.FromContext(request.Context())
	productID := int64(convert.ToInt(chi.URLParam(request, "productID")))
	sessionID := ctxutil.GetSessionID(request.Context())

	view, err := handler.service.Toggle(request.Context(), current, sessionID, productID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}
