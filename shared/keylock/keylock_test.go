package keylock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/shared/keylock"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	locks := keylock.New()

	const goroutines = 50

	counter := 0

	var wg sync.WaitGroup

	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			locks.Lock("item-id")
			defer locks.Unlock("item-id")

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyLock_DistinctKeysDoNotBlock(t *testing.T) {
	locks := keylock.New()

	locks.Lock("item-a")
	defer locks.Unlock("item-a")

	done := make(chan struct{})

	go func() {
		locks.Lock("item-b")
		defer locks.Unlock("item-b")

		close(done)
	}()

	<-done
}

func TestKeyLock_Reacquire(t *testing.T) {
	locks := keylock.New()

	locks.Lock("item-id")
	locks.Unlock("item-id")

	// the entry is dropped once released; a fresh acquire must still work
	locks.Lock("item-id")
	locks.Unlock("item-id")
}
