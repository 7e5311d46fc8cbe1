package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyKey(t *testing.T) {
	key, err := RandomKey()
	require.Nil(t, err)
	assert.Len(t, key, 43)

	hash := HashKey(key)
	assert.True(t, VerifyKey(key, hash))
	assert.False(t, VerifyKey(key+"x", hash))
	assert.False(t, VerifyKey("", hash))
	assert.False(t, VerifyKey(key, ""))
}
