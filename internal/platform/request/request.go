// Copyright (c) 2026 Quran API. All rights reserved.

// Package requestutil reads route parameters and JSON bodies, turning bad
// input into 400 [apperr.AppError] values.
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/msr7799/quran-api/internal/platform/constants"
	"github.com/msr7799/quran-api/internal/platform/validate"
)

// DecodeJSON decodes a single JSON value of at most [constants.MaxBodyBytes]
// into target. Empty, oversized, malformed or trailing input all yield
// [validate.ErrInvalidJSON]; unknown fields are ignored.
func DecodeJSON(request *http.Request, target any) error {
	if request.Body == nil {
		return validate.ErrInvalidJSON
	}

	decoder := json.NewDecoder(io.LimitReader(request.Body, constants.MaxBodyBytes+1))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param returns a URL parameter decoded exactly once. chi routes on the
// decoded URL.Path unless the request carries escapes Go would not produce
// itself (such as %2F); then it routes on RawPath and the captured value
// still needs unescaping. A value with an invalid escape is returned as is.
func Param(request *http.Request, name string) string {
	raw := chi.URLParam(request, name)
	if request.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// IntParam parses a URL parameter as an integer, naming the parameter in
// the 400 it returns otherwise.
func IntParam(request *http.Request, name string) (int, error) {
	values, err := IntParams(request, name)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// IntParams parses several URL parameters, reporting every failure at once.
func IntParams(request *http.Request, names ...string) ([]int, error) {
	values := make([]int, len(names))
	v := &validate.Validator{}
	for i, name := range names {
		v.Int(name, chi.URLParam(request, name), &values[i])
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// QueryParam returns a trimmed free-text parameter of 1 to
// [constants.MaxQueryLength] runes.
func QueryParam(request *http.Request, name string) (string, error) {
	query := strings.TrimSpace(Param(request, name))

	v := &validate.Validator{}
	v.Required(name, query).MaxLen(name, query, constants.MaxQueryLength)
	if err := v.Err(); err != nil {
		return "", err
	}
	return query, nil
}
