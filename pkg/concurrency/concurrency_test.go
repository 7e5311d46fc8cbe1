package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	k := NewKeyedMutex()

	var (
		wg      sync.WaitGroup
		counter = map[string]*int{"TOK": new(int), "EOS": new(int)}
	)

	for i := 0; i < 100; i++ {
		for _, key := range []string{"TOK", "EOS"} {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				unlock := k.Lock(key)
				*counter[key]++
				unlock()
			}(key)
		}
	}

	wg.Wait()
	assert.Equal(t, 100, *counter["TOK"])
	assert.Equal(t, 100, *counter["EOS"])
	assert.Equal(t, 0, k.Len())
}
