package translatable_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/translatable"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := translatable.Errorf(translatable.ENOTFOUND, "root %q not found", "#main")

	assert.Equal(t, translatable.ENOTFOUND, translatable.ErrorCode(err))
	assert.Equal(t, "root \"#main\" not found", translatable.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, translatable.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, translatable.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := translatable.Errorf(translatable.EINVALID, "bad")

	assert.Equal(t, translatable.EINVALID, translatable.ErrorCode(fmt.Errorf("loading: %w", err)))
	assert.Equal(t, translatable.EINTERNAL, translatable.ErrorCode(assert.AnError))
	assert.Equal(t, "Internal error.", translatable.ErrorMessage(assert.AnError))
}
