package locker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	locks := New()

	const iterations = 200
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unlock := locks.Lock(1)
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*iterations, counter)
}

func TestDistinctKeysDoNotBlock(t *testing.T) {
	locks := New()

	unlockA := locks.Lock(1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock(2)
		unlockB()
		close(done)
	}()

	<-done
}

func TestEntriesAreReleased(t *testing.T) {
	locks := New()

	unlock := locks.Lock(1)
	unlock()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.entries)
}
