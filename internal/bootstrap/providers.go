package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/notify"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/grpcserver"
	"github.com/xiebiao/library/internal/interface/http/router"
	"github.com/xiebiao/library/pkg/circuitbreaker"
	"github.com/xiebiao/library/pkg/mq"
	"github.com/xiebiao/library/pkg/tracing"
)

// provideDB 创建数据库连接,cleanup关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := gormstore.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideRedis 创建Redis客户端,未启用时返回nil
func provideRedis(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return nil, func() {}, nil
	}
	return client, func() { _ = client.Close() }, nil
}

// provideOverviewCache 总览缓存,没有Redis时不缓存
func provideOverviewCache(cfg *config.Config, client *goredis.Client) catalog.OverviewCache {
	if client == nil {
		return catalog.NopCache{}
	}
	return redis.NewCacheStore(client, redis.OverviewKey, cfg.Redis.OverviewTTL)
}

// providePublisher 创建事件发布者
// RabbitMQ连接失败只记录警告,服务照常启动,事件不再发布
func providePublisher(cfg *config.Config) (notify.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return nil, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, mq.ExchangeTopic)
	if err != nil {
		slog.Warn("RabbitMQ不可用,借阅事件将不会发布", slog.Any("error", err))
		return nil, func() {}, nil
	}
	return publisher, func() { _ = publisher.Close() }, nil
}

// provideBreaker 事件发布熔断器
func provideBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.Instrument(circuitbreaker.NewCircuitBreaker("library-events", circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	}))
}

// provideNotifier 写操作提交后的通知
func provideNotifier(cache catalog.OverviewCache, publisher notify.Publisher, breaker *circuitbreaker.CircuitBreaker) event.Notifier {
	return notify.NewDispatcher(cache, publisher, breaker)
}

// provideEngine 创建Gin引擎并注册路由
func provideEngine(cfg *config.Config, logger *slog.Logger, handlers router.Handlers) *gin.Engine {
	return router.New(cfg, logger, handlers)
}

// provideHTTPServer HTTP服务器
func provideHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// provideHealthServer gRPC健康检查,未启用时返回nil
func provideHealthServer(cfg *config.Config, db *gorm.DB) (*grpcserver.Server, error) {
	if !cfg.GRPC.Enabled {
		return nil, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	return grpcserver.New(sqlDB, grpcserver.DefaultProbeInterval), nil
}

// SetupTracing 按配置初始化链路追踪,返回的函数在退出前调用
func SetupTracing(cfg *config.Config) (func(), error) {
	if !cfg.Tracing.Enabled {
		return func() {}, nil
	}

	shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return nil, err
	}

	slog.Info("✓ 链路追踪已启用", slog.String("endpoint", cfg.Tracing.Endpoint))
	return func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("关闭链路追踪失败", slog.Any("error", err))
		}
	}, nil
}
