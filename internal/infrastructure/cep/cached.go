package cep

import (
	"context"
	"encoding/json"
	"time"

	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "cep:"

// CachedResolver keeps successful lookups in Redis.
// Cache failures are logged and treated as misses.
type CachedResolver struct {
	next   Resolver
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewCachedResolver(next Resolver, client *redis.Client, ttl time.Duration, log *logrus.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (r *CachedResolver) Resolve(ctx context.Context, raw string) (*Address, error) {
	digits, ok := validator.NormalizeCEP(raw)
	if !ok {
		return nil, ErrNotFound
	}
	key := cacheKeyPrefix + digits

	if cached, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var address Address
		if err := json.Unmarshal(cached, &address); err == nil {
			return &address, nil
		}
	} else if err != redis.Nil {
		r.log.Warnf("Failed to read CEP cache: %+v", err)
	}

	address, err := r.next.Resolve(ctx, digits)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(address); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.log.Warnf("Failed to write CEP cache: %+v", err)
		}
	}

	return address, nil
}
