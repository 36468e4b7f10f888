// Copyright (c) 2026 Quran API. All rights reserved.

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msr7799/quran-api/internal/platform/ctxutil"
)

func TestRequestID(t *testing.T) {
	assert.Empty(t, ctxutil.GetRequestID(context.Background()))

	ctx := ctxutil.WithRequestID(context.Background(), "0193-req")
	assert.Equal(t, "0193-req", ctxutil.GetRequestID(ctx))
}

func TestGetLogger(t *testing.T) {
	custom := slog.New(slog.NewJSONHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{"no logger", context.Background(), slog.Default()},
		{"nil logger", ctxutil.WithLogger(context.Background(), nil), slog.Default()},
		{"request logger", ctxutil.WithLogger(context.Background(), custom), custom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, ctxutil.GetLogger(tt.ctx))
		})
	}
}

func TestValuesAreIndependent(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "abc")
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))
}

func TestClientIP(t *testing.T) {
	assert.Empty(t, ctxutil.GetClientIP(context.Background()))

	ctx := ctxutil.WithClientIP(context.Background(), "203.0.113.7")
	assert.Equal(t, "203.0.113.7", ctxutil.GetClientIP(ctx))
	assert.Empty(t, ctxutil.GetRequestID(ctx))
}
