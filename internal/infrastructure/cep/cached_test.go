package cep

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	calls   int
	address *Address
	err     error
}

func (s *stubResolver) Resolve(ctx context.Context, cep string) (*Address, error) {
	s.calls++
	return s.address, s.err
}

// unreachableRedis fails every command, which the cache must treat as a miss.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCachedResolver_FailSafe(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	next := &stubResolver{address: &Address{CEP: "01310100", City: "São Paulo", State: "SP"}}
	resolver := NewCachedResolver(next, unreachableRedis(t), time.Hour, log)

	address, err := resolver.Resolve(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", address.City)

	_, err = resolver.Resolve(context.Background(), "01310100")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedResolver_PropagatesNotFound(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	next := &stubResolver{err: ErrNotFound}
	resolver := NewCachedResolver(next, unreachableRedis(t), time.Hour, log)

	_, err := resolver.Resolve(context.Background(), "00000000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = resolver.Resolve(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, next.calls)
}
