package blogmeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/blogmeta"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := blogmeta.Errorf(blogmeta.ENOTFOUND, "post %q not found", "hello-world")

	assert.Equal(t, blogmeta.ENOTFOUND, blogmeta.ErrorCode(err))
	assert.Equal(t, "post \"hello-world\" not found", blogmeta.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("index: %w", blogmeta.Errorf(blogmeta.EINVALID, "post path required"))

	assert.Equal(t, blogmeta.EINVALID, blogmeta.ErrorCode(err))
	assert.Equal(t, "post path required", blogmeta.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, blogmeta.EINTERNAL, blogmeta.ErrorCode(err))
	assert.Equal(t, "Internal error.", blogmeta.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, blogmeta.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, blogmeta.ErrorMessage(nil))
}
