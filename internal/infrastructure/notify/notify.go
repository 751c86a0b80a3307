// Package notify 写操作提交后的通知:删除总览缓存、发布借阅事件
package notify

import (
	"context"
	"log/slog"

	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/pkg/circuitbreaker"
)

// Invalidator 缓存失效
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Publisher 事件发布(由mq.Publisher实现)
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Dispatcher 事件分发
// 设计说明:
// 1. 先删缓存,再发消息,两步互不影响
// 2. 发布经过熔断器,RabbitMQ不可用时快速失败
// 3. 任何失败只记日志,不影响已提交的写操作
type Dispatcher struct {
	cache     Invalidator
	publisher Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewDispatcher 创建分发器
// cache、publisher可以为nil(对应功能未启用)
func NewDispatcher(cache Invalidator, publisher Publisher, breaker *circuitbreaker.CircuitBreaker) *Dispatcher {
	return &Dispatcher{
		cache:     cache,
		publisher: publisher,
		breaker:   breaker,
	}
}

// Notify 实现event.Notifier
func (d *Dispatcher) Notify(ctx context.Context, e event.Event) {
	if d.cache != nil {
		if err := d.cache.Invalidate(ctx); err != nil {
			slog.WarnContext(ctx, "删除总览缓存失败", slog.String("event", string(e.Type)), slog.Any("error", err))
		}
	}

	if d.publisher == nil {
		return
	}

	publish := func() error {
		return d.publisher.Publish(ctx, string(e.Type), e)
	}

	var err error
	if d.breaker != nil {
		err = d.breaker.Execute(publish)
		circuitbreaker.Record(d.breaker, err)
	} else {
		err = publish()
	}

	if err != nil {
		slog.WarnContext(ctx, "发布事件失败",
			slog.String("event", string(e.Type)),
			slog.Uint64("issue_id", uint64(e.IssueID)),
			slog.Any("error", err),
		)
	}
}

var _ event.Notifier = (*Dispatcher)(nil)
