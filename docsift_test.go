package docsift_test

import (
	"testing"

	"github.com/GongyiChuren/docsift"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docsift.Errorf(docsift.ENOTFOUND, "setting %q not set", "mode")

	assert.Equal(t, docsift.ENOTFOUND, docsift.ErrorCode(err))
	assert.Equal(t, "setting \"mode\" not set", docsift.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docsift.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docsift.ErrorMessage(nil))
}
