// Package metrics 基于Prometheus的指标收集
//
// 指标类型：
//   - Counter：只增不减的累计值（请求总数、借出总数）
//   - Gauge：可增可减的瞬时值（处理中的请求数、熔断器状态）
//   - Histogram：观测值分布（请求耗时）
//
// 使用示例：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.ObserveIssue("created")
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只使用有限取值（method、status、outcome），不要使用会员编号、图书ID等高基数值。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册（promauto重复注册会panic）
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// MembersRegisteredTotal 会员注册结果（Counter）
	// 标签：outcome（created/duplicate）
	MembersRegisteredTotal *prometheus.CounterVec

	// BooksRegisteredTotal 图书登记总数（Counter）
	BooksRegisteredTotal prometheus.Counter

	// IssuesTotal 借出结果（Counter）
	// 标签：outcome（created/declined）、reason（拒绝原因）
	IssuesTotal *prometheus.CounterVec

	// ReturnsTotal 归还结果（Counter）
	// 标签：outcome（returned/declined）、reason
	ReturnsTotal *prometheus.CounterVec

	// OverviewCacheTotal 总览缓存读取结果（Counter）
	// 标签：result（hit/miss/error）
	OverviewCacheTotal *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数（Counter）
	// 标签：name（熔断器名称）、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange、routing_key、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec

	// MessagesConsumedTotal 消息消费总数（Counter）
	// 标签：queue、result（success/failure）
	MessagesConsumedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 可以重复调用，只有第一次生效
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	MembersRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_members_registered_total",
			Help: "会员注册结果",
		},
		[]string{"outcome"},
	)

	BooksRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_books_registered_total",
			Help: "图书登记总数",
		},
	)

	IssuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_issues_total",
			Help: "借出结果",
		},
		[]string{"outcome", "reason"},
	)

	ReturnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_returns_total",
			Help: "归还结果",
		},
		[]string{"outcome", "reason"},
	)

	OverviewCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_overview_cache_total",
			Help: "总览缓存读取结果",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key", "result"},
	)

	MessagesConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_consumed_total",
			Help: "消息消费总数",
		},
		[]string{"queue", "result"},
	)
}

// ObserveMemberRegistration 记录会员注册结果
func ObserveMemberRegistration(outcome string) {
	InitMetrics()
	MembersRegisteredTotal.WithLabelValues(outcome).Inc()
}

// ObserveBookRegistration 记录图书登记
func ObserveBookRegistration() {
	InitMetrics()
	BooksRegisteredTotal.Inc()
}

// ObserveIssue 记录借出结果
func ObserveIssue(outcome, reason string) {
	InitMetrics()
	IssuesTotal.WithLabelValues(outcome, reason).Inc()
}

// ObserveReturn 记录归还结果
func ObserveReturn(outcome, reason string) {
	InitMetrics()
	ReturnsTotal.WithLabelValues(outcome, reason).Inc()
}

// ObserveOverviewCache 记录总览缓存读取结果
func ObserveOverviewCache(result string) {
	InitMetrics()
	OverviewCacheTotal.WithLabelValues(result).Inc()
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
