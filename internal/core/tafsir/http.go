// Copyright (c) 2026 Quran API. All rights reserved.

package tafsir

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/msr7799/quran-api/internal/platform/request"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

// Handler exposes tafsir under /api/quran/tafsir.
type Handler struct {
	service *Service
}

// NewHandler constructs a tafsir [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the tafsir endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{surahId}", handler.listSurah)
	router.Get("/{surahId}/{verseId}", handler.getVerse)
	return router
}

func (handler *Handler) getVerse(writer http.ResponseWriter, request *http.Request) {
	params, err := requestutil.IntParams(request, "surahId", "verseId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetVerse(request.Context(), params[0], params[1])
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) listSurah(writer http.ResponseWriter, request *http.Request) {
	sura, err := requestutil.IntParam(request, "surahId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	records, err := handler.service.ListSurah(request.Context(), sura)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, records)
}
