package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronJob(t *testing.T) {
	var runs int32
	job, err := NewCronJob("test", "UTC", "@every 1s", func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})
	require.Nil(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, job.Run(ctx), context.DeadlineExceeded)
	assert.EqualValues(t, 1, atomic.LoadInt32(&runs))
}

func TestCronJobInvalid(t *testing.T) {
	_, err := NewCronJob("test", "Nowhere/Invalid", "@every 1s", nil)
	assert.Error(t, err)

	job, err := NewCronJob("test", "", "not a spec", nil)
	require.Nil(t, err)
	assert.Error(t, job.Run(context.Background()))
}
