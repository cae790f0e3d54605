// SPDX-License-Identifier: EPL-2.0

package al_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/ears/al"
	"github.com/ik5/ears/internal/altest"
)

func TestErrorCode_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   al.ErrorCode
		prefix string
	}{
		{al.NoError, "AL_NO_ERROR"},
		{al.InvalidName, "AL_INVALID_NAME"},
		{al.InvalidEnum, "AL_INVALID_ENUM"},
		{al.InvalidValue, "AL_INVALID_VALUE"},
		{al.InvalidOperation, "AL_INVALID_OPERATION"},
		{al.OutOfMemory, "AL_OUT_OF_MEMORY"},
		{al.ErrorCode(0x1234), "unknown OpenAL error 0x1234"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, tt.code.Error(), tt.prefix)
		})
	}
}

func TestErrorCode_As(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("upload: %w", al.OutOfMemory)

	var code al.ErrorCode
	require.True(t, errors.As(err, &code))
	assert.Equal(t, al.OutOfMemory, code)
	assert.True(t, errors.Is(err, al.OutOfMemory))
	assert.False(t, errors.Is(err, al.InvalidName))
}

func TestCheckError(t *testing.T) {
	t.Parallel()

	ctx := altest.New()
	require.NoError(t, al.CheckError(ctx))

	ctx.DeleteBuffer(42)

	err := al.CheckError(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, al.InvalidName)

	// the flag is cleared by the read
	assert.NoError(t, al.CheckError(ctx))
}

func TestCheckError_FirstErrorSticks(t *testing.T) {
	t.Parallel()

	ctx := altest.New()
	ctx.DeleteEffect(7)
	ctx.Listenerfv(al.Param(0x7777), []float32{1})

	assert.ErrorIs(t, al.CheckError(ctx), al.InvalidName)
}
