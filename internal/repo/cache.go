package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cached is a read-through Redis cache in front of a Repository. Stored
// evaluations never change, so entries are only evicted by ttl. Cache
// errors are logged and the backing store answers.
type Cached struct {
	Repository
	rdb *redis.Client
	ttl time.Duration
}

func NewCached(next Repository, rdb *redis.Client, ttl time.Duration) *Cached {
	return &Cached{Repository: next, rdb: rdb, ttl: ttl}
}

func key(id uuid.UUID) string { return "evaluation:" + id.String() }

func (c *Cached) Save(ctx context.Context, e *Evaluation) error {
	if err := c.Repository.Save(ctx, e); err != nil {
		return err
	}
	c.put(ctx, e)
	return nil
}

func (c *Cached) Get(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	data, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err == nil {
		var e Evaluation
		if err := json.Unmarshal(data, &e); err == nil {
			return &e, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("cache: get %s: %v", id, err)
	}

	e, err := c.Repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.put(ctx, e)
	return e, nil
}

func (c *Cached) put(ctx context.Context, e *Evaluation) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(e.ID), data, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", e.ID, err)
	}
}
