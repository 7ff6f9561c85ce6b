package lock

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	redisrepo "github.com/muhammadheryan/pendaftaran/repository/redis"
)

const keyPrefix = "submission:"

// LockRepository guards a form instance against concurrent submissions.
type LockRepository interface {
	// Acquire takes the lock for key and reports false when it is already held.
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type redisLock struct {
	redisRepo redisrepo.Repository
	ttl       time.Duration
}

// NewRedisLockRepository keeps locks in Redis so every instance of the
// service sees them.
func NewRedisLockRepository(redisRepo redisrepo.Repository, ttl time.Duration) LockRepository {
	return &redisLock{redisRepo: redisRepo, ttl: ttl}
}

func (l *redisLock) Acquire(ctx context.Context, key string) (bool, error) {
	return l.redisRepo.SetNX(ctx, keyPrefix+key, "1", l.ttl)
}

func (l *redisLock) Release(ctx context.Context, key string) error {
	return l.redisRepo.Delete(ctx, keyPrefix+key)
}

type memoryLock struct {
	cache *gocache.Cache
}

// NewMemoryLockRepository keeps locks in process memory. Locks expire after
// ttl so a crashed request cannot hold a form forever.
func NewMemoryLockRepository(ttl time.Duration) LockRepository {
	return &memoryLock{cache: gocache.New(ttl, 2*ttl)}
}

func (l *memoryLock) Acquire(_ context.Context, key string) (bool, error) {
	// Add fails when a live item already exists
	if err := l.cache.Add(keyPrefix+key, struct{}{}, gocache.DefaultExpiration); err != nil {
		return false, nil
	}
	return true, nil
}

func (l *memoryLock) Release(_ context.Context, key string) error {
	l.cache.Delete(keyPrefix + key)
	return nil
}
