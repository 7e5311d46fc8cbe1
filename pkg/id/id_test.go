package id

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestTraceID(t *testing.T) {
	assert.T(t, IsUUID(GenTraceID()), "trace id should be uuid")
	assert.NotEqual(t, GenTraceID(), GenTraceID())

	a := TraceIDFrom("withdraw:alice:1")
	assert.Equal(t, a, TraceIDFrom("withdraw:alice:1"))
	assert.NotEqual(t, a, TraceIDFrom("withdraw:alice:2"))
	assert.T(t, IsUUID(a), "derived trace id should be uuid")
}
