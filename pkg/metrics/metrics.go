// Package metrics 提供基于Prometheus的指标收集
//
// 指标命名规范：
// - Counter以_total结尾（http_requests_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 标签只用低基数维度（method/path/status），不要用user_id等高基数值
//
// 使用方式：
// 1. HTTP服务通过promhttp.Handler()暴露/metrics端点
// 2. 业务代码直接操作下方的指标变量
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method（GET/POST）、path（路由模板）、status（200/404）
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时分布
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// 业务指标

	// BooksCreatedTotal 图书创建总数
	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "Total number of books created",
		},
	)

	// ReviewsSubmittedTotal 评论提交成功总数
	ReviewsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Total number of reviews submitted",
		},
	)

	// ReviewConflictsTotal 评论唯一性冲突总数（同一用户重复评论同一本书）
	ReviewConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "review_conflicts_total",
			Help: "Total number of duplicate review submissions rejected",
		},
	)

	// 缓存指标

	// DetailCacheHitsTotal 图书详情缓存命中总数
	DetailCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "book_detail_cache_hits_total",
			Help: "Total number of book detail cache hits",
		},
	)

	// DetailCacheMissesTotal 图书详情缓存未命中总数
	DetailCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "book_detail_cache_misses_total",
			Help: "Total number of book detail cache misses",
		},
	)
)
