// Copyright (c) 2026 Quran API. All rights reserved.

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/msr7799/quran-api/internal/platform/request"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

// Handler exposes the search endpoints under /api/search.
type Handler struct {
	service *Service
}

// NewHandler constructs a search [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the search endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/quran/{query}", handler.quran)
	router.Get("/tafsir/{query}", handler.tafsir)
	router.Get("/all/{query}", handler.all)
	router.Get("/page/{pageNumber}", handler.page)
	return router
}

func (handler *Handler) quran(writer http.ResponseWriter, request *http.Request) {
	query, err := requestutil.QueryParam(request, "query")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	verses, err := handler.service.Quran(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, verses)
}

func (handler *Handler) tafsir(writer http.ResponseWriter, request *http.Request) {
	query, err := requestutil.QueryParam(request, "query")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	records, err := handler.service.Tafsir(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, records)
}

func (handler *Handler) all(writer http.ResponseWriter, request *http.Request) {
	query, err := requestutil.QueryParam(request, "query")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	combined, err := handler.service.All(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, combined)
}

func (handler *Handler) page(writer http.ResponseWriter, request *http.Request) {
	page, err := requestutil.IntParam(request, "pageNumber")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Page(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
