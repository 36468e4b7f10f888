// Copyright (c) 2026 Quran API. All rights reserved.

// Package respond writes API responses.
//
// Successful responses carry the bare JSON result (array or object) with no
// wrapper, as existing clients expect. Errors always use [ErrorEnvelope], so
// a "message" key is present whatever the failure class.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/constants"
	"github.com/msr7799/quran-api/internal/platform/ctxutil"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes payload with statusCode.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set(constants.HeaderContentType, contentTypeJSON)
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, data)
}

func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, data)
}

// Message writes 200 {"message": msg}.
func Message(writer http.ResponseWriter, msg string) {
	JSON(writer, http.StatusOK, map[string]string{constants.FieldMessage: msg})
}

// Error writes err as an [ErrorEnvelope]. Errors that are not
// [*apperr.AppError] become a generic 500; every 5xx is logged with its
// cause, which never reaches the client.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctx := request.Context()
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Message: appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
