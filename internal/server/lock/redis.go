package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL   = 10 * time.Second
	defaultRetryWait = 25 * time.Millisecond
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var refreshScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Redis is a Locker shared by every process talking to the same Redis. The
// key expires after ttl so a crashed holder cannot block rotation forever.
// While a lease is held a watchdog extends the key every ttl/3.
type Redis struct {
	client    redis.Cmdable
	key       string
	ttl       time.Duration
	retryWait time.Duration
}

func NewRedis(client redis.Cmdable, key string, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &Redis{client: client, key: key, ttl: ttl, retryWait: defaultRetryWait}
}

func (r *Redis) Lock(ctx context.Context) (Lease, error) {
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, r.key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock: %w", err)
		}
		if ok {
			return r.newLease(token), nil
		}

		t := time.NewTimer(r.retryWait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

type redisLease struct {
	r     *Redis
	token string

	stop chan struct{}
	done chan struct{}
	once sync.Once

	mu   sync.Mutex
	lost bool
}

func (r *Redis) newLease(token string) *redisLease {
	l := &redisLease{r: r, token: token, stop: make(chan struct{}), done: make(chan struct{})}
	go l.watchdog()
	return l
}

func (l *redisLease) watchdog() {
	defer close(l.done)

	t := time.NewTicker(l.r.ttl / 3)
	defer t.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-t.C:
			ctx, cancel := context.WithTimeout(context.Background(), l.r.ttl/3)
			err := l.refresh(ctx)
			cancel()
			if errors.Is(err, ErrNotHeld) {
				return
			}
		}
	}
}

// refresh extends the key if it still carries our token.
func (l *redisLease) refresh(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lost {
		return ErrNotHeld
	}
	n, err := refreshScript.Run(ctx, l.r.client, []string{l.r.key}, l.token, l.r.ttl.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("redis refresh: %w", err)
	}
	if n == 0 {
		l.lost = true
		return ErrNotHeld
	}
	return nil
}

func (l *redisLease) Check(ctx context.Context) error {
	return l.refresh(ctx)
}

func (l *redisLease) Unlock(ctx context.Context) error {
	l.once.Do(func() { close(l.stop) })
	<-l.done

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lost {
		return ErrNotHeld
	}
	n, err := releaseScript.Run(ctx, l.r.client, []string{l.r.key}, l.token).Int64()
	if err != nil {
		return fmt.Errorf("redis unlock: %w", err)
	}
	l.lost = true
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}
