// Package circuitbreaker 熔断器
//
// 保护对外部依赖（RabbitMQ）的调用：依赖持续失败时快速失败，不再等待超时，
// 过一段时间后放行少量请求探测是否恢复。
//
// 状态转换：
//
//	CLOSED ──(ReadyToTrip)──> OPEN ──(Timeout)──> HALF_OPEN
//	   ^                                             │
//	   └──────────────(探测成功)───────────────────────┤
//	                  OPEN <──(探测失败)───────────────┘
package circuitbreaker

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/xiebiao/library/pkg/metrics"
)

// State 熔断器状态
type State int

const (
	// StateClosed 正常放行,统计失败次数
	StateClosed State = iota
	// StateOpen 快速失败,Timeout后转为HALF_OPEN
	StateOpen
	// StateHalfOpen 放行最多MaxRequests个探测请求
	StateHalfOpen
)

// String 状态转字符串（便于日志）
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开时返回
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	// MaxRequests 半开状态下允许的探测请求数,0按1处理
	MaxRequests uint32

	// Interval CLOSED状态的统计窗口,到期清零;0表示不清零
	Interval time.Duration

	// Timeout OPEN状态持续时间,0按60秒处理
	Timeout time.Duration

	// ReadyToTrip 是否应该打开熔断器,nil时连续失败超过5次熔断
	ReadyToTrip func(counts Counts) bool
}

// Counts 当前统计窗口内的请求计数
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// FailureRate 失败率
func (c Counts) FailureRate() float64 {
	if c.Requests == 0 {
		return 0
	}
	return float64(c.TotalFailures) / float64(c.Requests)
}

func (c *Counts) success() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) failure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// CircuitBreaker 熔断器(并发安全)
type CircuitBreaker struct {
	name        string
	maxRequests uint32
	interval    time.Duration
	timeout     time.Duration
	readyToTrip func(counts Counts) bool

	mu            sync.Mutex
	state         State
	generation    uint64 // 每次状态切换递增,丢弃跨代的请求结果
	counts        Counts
	expiry        time.Time
	onStateChange func(name string, from, to State)
}

// NewCircuitBreaker 创建熔断器
//
//	cb := circuitbreaker.NewCircuitBreaker("library-events", circuitbreaker.Config{
//	    MaxRequests: 1,
//	    Interval:    time.Minute,
//	    Timeout:     30 * time.Second,
//	})
func NewCircuitBreaker(name string, cfg Config) *CircuitBreaker {
	cb := &CircuitBreaker{
		name:        name,
		maxRequests: cfg.MaxRequests,
		interval:    cfg.Interval,
		timeout:     cfg.Timeout,
		readyToTrip: cfg.ReadyToTrip,
	}
	if cb.maxRequests == 0 {
		cb.maxRequests = 1
	}
	if cb.timeout <= 0 {
		cb.timeout = 60 * time.Second
	}
	if cb.readyToTrip == nil {
		cb.readyToTrip = func(c Counts) bool { return c.ConsecutiveFailures > 5 }
	}
	cb.toNewGeneration(time.Now())
	return cb
}

// SetStateChangeCallback 设置状态变化回调(记录日志、更新指标)
// 回调在持有锁时调用,不能再调用熔断器的方法
func (cb *CircuitBreaker) SetStateChangeCallback(fn func(name string, from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Execute 在熔断保护下执行req
// 熔断器打开时不调用req,直接返回ErrOpenState
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	err = req()
	cb.afterRequest(generation, err == nil)
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, _ := cb.currentState(time.Now())
	return state
}

// Counts 当前统计数据
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.counts
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(time.Now())
	switch {
	case state == StateOpen:
		return generation, ErrOpenState
	case state == StateHalfOpen && cb.counts.Requests >= cb.maxRequests:
		return generation, ErrOpenState
	}

	cb.counts.Requests++
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()
	state, generation := cb.currentState(now)
	if generation != before {
		return
	}

	if success {
		cb.counts.success()
		if state == StateHalfOpen {
			cb.setState(StateClosed, now)
		}
		return
	}

	cb.counts.failure()
	switch state {
	case StateClosed:
		if cb.readyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		cb.setState(StateOpen, now)
	}
}

// currentState 处理过期:CLOSED窗口到期清零,OPEN超时转HALF_OPEN
func (cb *CircuitBreaker) currentState(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.toNewGeneration(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state
	cb.toNewGeneration(now)

	if cb.onStateChange != nil {
		cb.onStateChange(cb.name, prev, state)
	}
}

func (cb *CircuitBreaker) toNewGeneration(now time.Time) {
	cb.generation++
	cb.counts = Counts{}

	switch cb.state {
	case StateClosed:
		if cb.interval > 0 {
			cb.expiry = now.Add(cb.interval)
		} else {
			cb.expiry = time.Time{}
		}
	case StateOpen:
		cb.expiry = now.Add(cb.timeout)
	default:
		cb.expiry = time.Time{}
	}
}

// Instrument 把状态变化写入日志和Prometheus指标
func Instrument(cb *CircuitBreaker) *CircuitBreaker {
	metrics.InitMetrics()
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": cb.name}, float64(StateClosed))

	cb.SetStateChangeCallback(func(name string, from, to State) {
		slog.Warn("熔断器状态变化",
			slog.String("name", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})
	return cb
}

// Record 记录一次调用结果到circuit_breaker_requests_total
func Record(cb *CircuitBreaker, err error) {
	result := "success"
	switch {
	case errors.Is(err, ErrOpenState):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.InitMetrics()
	metrics.CircuitBreakerRequests.WithLabelValues(cb.name, result).Inc()
}
