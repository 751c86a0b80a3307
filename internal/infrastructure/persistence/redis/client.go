package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewClient 创建Redis客户端
// 设计说明：
// 1. redis.enabled=false时返回nil,调用方退化为无缓存
// 2. 配置连接池参数（PoolSize、MinIdleConns）和超时参数
// 3. 启动时测试连接可用性
func NewClient(cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("Redis连接失败: %w", err)
	}

	slog.Info("✓ Redis连接成功", slog.String("addr", cfg.Redis.Addr()))
	return client, nil
}
