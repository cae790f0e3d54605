// SPDX-License-Identifier: EPL-2.0

//go:build !openal || !cgo

package openal

import (
	"testing"

	"github.com/ik5/ears/al"
)

func TestStub_NeverValid(t *testing.T) {
	t.Parallel()

	ctx := Current()
	if ctx.Valid() {
		t.Fatal("stub context reports valid")
	}
	if id := ctx.GenBuffer(); id != 0 {
		t.Errorf("GenBuffer() = %d, want 0", id)
	}
	if err := al.CheckError(ctx); err != nil {
		t.Errorf("CheckError() = %v, want nil", err)
	}
}
