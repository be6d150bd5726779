// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package checkout

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/voltcart/internal/platform/request"
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

	router.Post("/", handler.submit)

	return router
}

// PaymentRoutes are mounted separately: the shopper lands on them coming
// back from the external payment page.
func (handler *Handler) PaymentRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{paymentID}", handler.verify)

	return router
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var address Address
	if err := requestutil.DecodeJSON(request, &address); err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.service.Submit(request.Context(), NewFlow(), address)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, link)
}

func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	paymentID := chi.URLParam(request, "paymentID")
	paymentLinkID := request.URL.Query().Get("payment_link_id")

	flow := Resume(StateAwaitingExternalPayment)
	result := handler.service.VerifyPayment(request.Context(), flow, paymentID, paymentLinkID)
	respond.OK(writer, result)
}
