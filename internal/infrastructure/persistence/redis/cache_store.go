package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// OverviewKey 馆藏总览缓存Key
const OverviewKey = "library:overview"

// CacheStore JSON值缓存(Cache-Aside)
// 设计说明：
// 1. 读：先查缓存，未命中由调用方查库后回填
// 2. 写：数据库提交后删除缓存，下次读取时重建
// 3. 值以JSON存储，带过期时间兜底
type CacheStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewCacheStore 创建缓存存储
func NewCacheStore(client *redis.Client, key string, ttl time.Duration) *CacheStore {
	return &CacheStore{client: client, key: key, ttl: ttl}
}

// Load 读取缓存并反序列化到dest
// 未命中返回(false, nil)
func (c *CacheStore) Load(ctx context.Context, dest any) (bool, error) {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "读取缓存失败")
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("反序列化缓存失败: %w", err)
	}
	return true, nil
}

// Store 序列化并写入缓存
func (c *CacheStore) Store(ctx context.Context, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("序列化缓存失败: %w", err)
	}

	if err := c.client.Set(ctx, c.key, val, c.ttl).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "写入缓存失败")
	}
	return nil
}

// Invalidate 删除缓存
func (c *CacheStore) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "删除缓存失败")
	}
	return nil
}
