package repository

import (
	"context"
	"errors"
	"fmt"

	"smartlandlord/internal/store"
)

const snapshotKeyPrefix = "sl:snapshot:"

// RedisSnapshots 默认快照后端：一个集合一个 key，值为 JSON 数组，永不过期
type RedisSnapshots struct {
	kv store.KV
}

func NewRedisSnapshots(kv store.KV) *RedisSnapshots {
	return &RedisSnapshots{kv: kv}
}

func (r *RedisSnapshots) Load(ctx context.Context, collection string) ([]byte, error) {
	val, err := r.kv.Get(ctx, snapshotKeyPrefix+collection)
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot %q: %w", collection, err)
	}
	return []byte(val), nil
}

func (r *RedisSnapshots) Save(ctx context.Context, collection string, data []byte) error {
	if err := r.kv.Set(ctx, snapshotKeyPrefix+collection, string(data), 0); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", collection, err)
	}
	return nil
}
