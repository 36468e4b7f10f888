// Copyright (c) 2026 Quran API. All rights reserved.

package bookmark

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/msr7799/quran-api/internal/platform/request"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

// Handler exposes bookmarks under /api/bookmarks.
type Handler struct {
	service *Service
}

// NewHandler constructs a bookmark [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the bookmark endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Delete("/{id}", handler.delete)
	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID := strings.TrimSpace(request.URL.Query().Get("userId"))

	bookmarks, err := handler.service.List(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, bookmarks)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var body createRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmark, err := handler.service.Create(request.Context(), body.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, bookmark)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, msgDeleted)
}
