package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate go run go.uber.org/mock/mockgen -source=dedup.go -destination=mock/dedup.go -package=mock github.com/savioruz/kopi/pkg/redis Deduper

// Deduper remembers webhook deliveries that were already applied.
type Deduper interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type deduper struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewDeduper(client redis.UniversalClient, prefix string, ttl time.Duration) Deduper {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &deduper{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (d *deduper) key(k string) string {
	return d.prefix + ":" + k
}

func (d *deduper) Seen(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// Mark records key. It is a SETNX so concurrent deliveries cannot extend each other's TTL.
func (d *deduper) Mark(ctx context.Context, key string) error {
	return d.client.SetNX(ctx, d.key(key), "1", d.ttl).Err()
}
