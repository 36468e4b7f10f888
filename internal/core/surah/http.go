// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/msr7799/quran-api/internal/platform/request"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes surah documents under /api/quran.
type Handler struct {
	service *Service
}

// NewHandler constructs a surah [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the surah endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/surahs", handler.listSurahs)
	router.Get("/surahs/{surahId}", handler.getSurah)
	router.Get("/pages/{pageNumber}", handler.getPage)
	router.Get("/audio/{surahId}", handler.getAudio)
}

func (handler *Handler) listSurahs(writer http.ResponseWriter, request *http.Request) {
	surahs, err := handler.service.ListSurahs(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, surahs)
}

func (handler *Handler) getSurah(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.IntParam(request, "surahId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	surah, err := handler.service.GetSurah(request.Context(), number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, surah)
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	page, err := requestutil.IntParam(request, "pageNumber")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetPage(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) getAudio(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.IntParam(request, "surahId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	audio, err := handler.service.GetAudio(request.Context(), number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, audio)
}
