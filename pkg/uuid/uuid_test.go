// Copyright (c) 2026 Quran API. All rights reserved.

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msr7799/quran-api/pkg/uuid"
)

func TestNew(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	assert.True(t, uuid.Valid(first))
	assert.NotEqual(t, first, second)
	assert.Equal(t, byte('7'), first[14], "version nibble")
}

func TestValid(t *testing.T) {
	assert.False(t, uuid.Valid("not-a-uuid"))
	assert.False(t, uuid.Valid("65f1c2a9e4b0a1b2c3d4e5f6"))
}
