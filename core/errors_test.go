package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "cannot transfer to self", ErrSameAccount.Error())
	assert.Equal(t, 100111, ErrSameAccount.Code())
	assert.Equal(t, "42", ErrorCode(42).Error())

	wrapped := fmt.Errorf("issue: %w", ErrSupplyExceeded)
	code, ok := ErrorCodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrSupplyExceeded, code)
	assert.True(t, errors.Is(wrapped, ErrSupplyExceeded))

	code, ok = ErrorCodeOf(errors.New("boom"))
	assert.False(t, ok)
	assert.Equal(t, ErrUnknown, code)

	assert.Nil(t, Require(true, ErrMemoTooLong))
	assert.Equal(t, ErrMemoTooLong, Require(false, ErrMemoTooLong))
}
