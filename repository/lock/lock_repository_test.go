package lock_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muhammadheryan/pendaftaran/repository/lock"
	redismocks "github.com/muhammadheryan/pendaftaran/mocks/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLock_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	l := lock.NewMemoryLockRepository(time.Minute)

	ok, err := l.Acquire(ctx, "form-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx, "form-1")
	require.NoError(t, err)
	assert.False(t, ok, "second acquire of a held lock must fail")

	ok, err = l.Acquire(ctx, "form-2")
	require.NoError(t, err)
	assert.True(t, ok, "locks are per key")

	require.NoError(t, l.Release(ctx, "form-1"))

	ok, err = l.Acquire(ctx, "form-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLock_Expires(t *testing.T) {
	ctx := context.Background()
	l := lock.NewMemoryLockRepository(20 * time.Millisecond)

	ok, _ := l.Acquire(ctx, "form-1")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	ok, err := l.Acquire(ctx, "form-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLock_ConcurrentAcquire(t *testing.T) {
	ctx := context.Background()
	l := lock.NewMemoryLockRepository(time.Minute)

	var won int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Acquire(ctx, "form-1"); ok {
				atomic.AddInt32(&won, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won)
}

func TestRedisLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire uses SetNX with prefix and ttl", func(t *testing.T) {
		repo := redismocks.NewRepository(t)
		repo.On("SetNX", ctx, "submission:form-1", "1", 30*time.Second).Return(false, nil).Once()

		ok, err := lock.NewRedisLockRepository(repo, 30*time.Second).Acquire(ctx, "form-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("acquire propagates redis error", func(t *testing.T) {
		repo := redismocks.NewRepository(t)
		repo.On("SetNX", ctx, "submission:form-1", "1", time.Second).Return(false, errors.New("conn refused")).Once()

		_, err := lock.NewRedisLockRepository(repo, time.Second).Acquire(ctx, "form-1")
		assert.Error(t, err)
	})

	t.Run("release deletes key", func(t *testing.T) {
		repo := redismocks.NewRepository(t)
		repo.On("Delete", ctx, "submission:form-1").Return(nil).Once()

		assert.NoError(t, lock.NewRedisLockRepository(repo, time.Second).Release(ctx, "form-1"))
	})
}
