// Package metrics 提供基于Prometheus的指标收集
//
// 指标通过/metrics端点以Prometheus文本格式暴露,由Prometheus Server定期抓取。
// 本项目只保留两类指标:
// - HTTP请求指标(总数、耗时),由中间件统一记录
// - 图书目录业务指标(创建/更新/删除计数、保存失败计数)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/books/）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// 图书目录业务指标

	// BooksCreatedTotal 图书创建总数（Counter）
	BooksCreatedTotal prometheus.Counter

	// BooksUpdatedTotal 图书更新总数（Counter）
	BooksUpdatedTotal prometheus.Counter

	// BooksDeletedTotal 图书删除总数（Counter）
	BooksDeletedTotal prometheus.Counter

	// BookSaveFailuresTotal 保存阶段失败总数（Counter）
	// 标签：reason（duplicate/store）
	// 只统计到达存储层之后的失败,字段校验失败不计入
	BookSaveFailuresTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，用于注册所有指标到默认Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

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

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书创建总数",
		},
	)

	BooksUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_updated_total",
			Help: "图书更新总数",
		},
	)

	BooksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "图书删除总数",
		},
	)

	BookSaveFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_save_failures_total",
			Help: "保存阶段失败总数",
		},
		[]string{"reason"},
	)
}

// IncCounter 递增Counter指标(nil安全,未初始化时不做任何事)
func IncCounter(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

// IncCounterVec 递增带标签的Counter指标
func IncCounterVec(c *prometheus.CounterVec, labels map[string]string) {
	if c != nil {
		c.With(labels).Inc()
	}
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(h *prometheus.HistogramVec, labels map[string]string, value float64) {
	if h != nil {
		h.With(labels).Observe(value)
	}
}
