// Copyright (c) 2026 Quran API. All rights reserved.

package audio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/msr7799/quran-api/internal/platform/request"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

// Handler exposes the audio endpoints under /api/audio.
type Handler struct {
	service *Service
}

// NewHandler constructs an audio [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the audio endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/reciters", handler.ListReciters)
	router.Get("/reciters/{reciterId}", handler.reciterRecitations)
	router.Get("/rewayat", handler.listRewayat)
	router.Get("/surah/{surahId}/rewaya/{rewaya}", handler.surahByRewaya)
	router.Get("/search/{query}", handler.searchReciters)
	router.Get("/navigation", handler.navigation)

	return router
}

// ListReciters is exported because /api/quran/reciters serves it too.
func (handler *Handler) ListReciters(writer http.ResponseWriter, request *http.Request) {
	reciters, err := handler.service.ListReciters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reciters)
}

func (handler *Handler) listRewayat(writer http.ResponseWriter, request *http.Request) {
	rewayat, err := handler.service.ListRewayat(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rewayat)
}

func (handler *Handler) reciterRecitations(writer http.ResponseWriter, request *http.Request) {
	reciterID, err := requestutil.IntParam(request, "reciterId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	recitations, err := handler.service.ReciterRecitations(request.Context(), reciterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, recitations)
}

func (handler *Handler) surahByRewaya(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.IntParam(request, "surahId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rewaya, err := requestutil.QueryParam(request, "rewaya")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.SurahByRewaya(request.Context(), number, rewaya)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) searchReciters(writer http.ResponseWriter, request *http.Request) {
	query, err := requestutil.QueryParam(request, "query")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reciters, err := handler.service.SearchReciters(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reciters)
}

func (handler *Handler) navigation(writer http.ResponseWriter, request *http.Request) {
	index, err := handler.service.Navigation(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, index)
}
