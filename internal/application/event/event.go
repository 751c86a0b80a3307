// Package event 写操作提交后发出的领域事件
//
// 事件在事务COMMIT之后发出,Notifier的实现不能让写操作失败。
package event

import (
	"context"
	"sync"
	"time"
)

// Type 事件类型(同时作为RabbitMQ的routing key)
type Type string

const (
	MemberRegistered Type = "member.registered"
	BookRegistered   Type = "book.registered"
	IssueCreated     Type = "issue.created"
	IssueReturned    Type = "issue.returned"
)

// AllTypes 全部事件类型
func AllTypes() []Type {
	return []Type{MemberRegistered, BookRegistered, IssueCreated, IssueReturned}
}

// Event 领域事件
type Event struct {
	Type       Type      `json:"type"`
	MemberCode string    `json:"member_code,omitempty"`
	BookID     uint      `json:"book_id,omitempty"`
	IssueID    uint      `json:"issue_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier 事件通知
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// NopNotifier 不做任何事的Notifier
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}

// Recorder 记录收到的事件(测试用)
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events 已记录的事件
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types 已记录事件的类型序列
func (r *Recorder) Types() []Type {
	events := r.Events()
	types := make([]Type, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}
