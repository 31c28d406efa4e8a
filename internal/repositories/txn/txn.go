// Package txn runs multi-document Redis writes as one optimistic transaction.
//
// The callback reads under WATCH and queues every write in a single
// MULTI/EXEC, so either all writes commit or none do. A concurrent change to a
// watched key aborts the commit and the callback is retried from scratch.
package txn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// MaxRetries bounds how often a conflicting transaction is replayed
const MaxRetries = 5

// ErrConflict is returned when every retry lost the optimistic lock
var ErrConflict = errors.New("transaction aborted by concurrent writes")

// Run executes fn with keys watched, retrying on optimistic lock failures
func Run(ctx context.Context, client *redis.Client, fn func(tx *redis.Tx) error, keys ...string) error {
	for i := 0; i < MaxRetries; i++ {
		err := client.Watch(ctx, fn, keys...)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}

// Getter is satisfied by *redis.Client, *redis.Tx and pipelines
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// GetJSON loads the JSON document at key into v. found is false when the key
// does not exist.
func GetJSON(ctx context.Context, g Getter, key string, v interface{}) (found bool, err error) {
	raw, err := g.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

// Batch is an ordered list of writes committed together in one MULTI/EXEC
type Batch struct {
	ops []func(ctx context.Context, pipe redis.Pipeliner)
}

// SetJSON queues a JSON document write
func (b *Batch) SetJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	b.ops = append(b.ops, func(ctx context.Context, pipe redis.Pipeliner) {
		pipe.Set(ctx, key, raw, 0)
	})
	return nil
}

// Del queues key deletions
func (b *Batch) Del(keys ...string) {
	if len(keys) == 0 {
		return
	}
	b.ops = append(b.ops, func(ctx context.Context, pipe redis.Pipeliner) {
		pipe.Del(ctx, keys...)
	})
}

// SAdd queues adding a member to a set index
func (b *Batch) SAdd(key, member string) {
	b.ops = append(b.ops, func(ctx context.Context, pipe redis.Pipeliner) {
		pipe.SAdd(ctx, key, member)
	})
}

// SRem queues removing a member from a set index
func (b *Batch) SRem(key, member string) {
	b.ops = append(b.ops, func(ctx context.Context, pipe redis.Pipeliner) {
		pipe.SRem(ctx, key, member)
	})
}

// ZAdd queues adding a member to an ordered index
func (b *Batch) ZAdd(key, member string, score float64) {
	b.ops = append(b.ops, func(ctx context.Context, pipe redis.Pipeliner) {
		pipe.ZAdd(ctx, key, redis.Z{Score: score, Member: member})
	})
}

// ZRem queues removing a member from an ordered index
func (b *Batch) ZRem(key, member string) {
	b.ops = append(b.ops, func(ctx context.Context, pipe redis.Pipeliner) {
		pipe.ZRem(ctx, key, member)
	})
}

// Len is the number of queued writes
func (b *Batch) Len() int {
	return len(b.ops)
}

// Commit applies every queued write inside tx's MULTI/EXEC
func (b *Batch) Commit(ctx context.Context, tx *redis.Tx) error {
	if len(b.ops) == 0 {
		return nil
	}
	_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, op := range b.ops {
			op(ctx, pipe)
		}
		return nil
	})
	return err
}
