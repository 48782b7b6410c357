package monitor

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Monitor Prometheus监控指标收集器
type Monitor struct {
	registry *prometheus.Registry

	// HTTP指标
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	// 查询指标
	tradesReturned *prometheus.CounterVec
	filterMisses   *prometheus.CounterVec

	// 系统指标
	configReloads *prometheus.CounterVec
}

// Config 监控配置
type Config struct {
	Namespace string
	Subsystem string
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Namespace: "tradequery",
		Subsystem: "api",
	}
}

// New 创建新的Monitor实例
func New(cfg Config) *Monitor {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Monitor{
		registry: reg,

		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_requests_total",
				Help:      "HTTP请求总数",
			},
			[]string{"route", "method", "status"},
		),
		httpLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP请求耗时（秒）",
				Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
			[]string{"route"},
		),

		tradesReturned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "trades_returned_total",
				Help:      "按过滤条件返回的成交记录数",
			},
			[]string{"filter"},
		),
		filterMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "filter_not_found_total",
				Help:      "过滤结果为空的请求数",
			},
			[]string{"filter"},
		),

		configReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_reloads_total",
				Help:      "配置热更新次数",
			},
			[]string{"result"},
		),
	}
}

// RecordRequest 记录一次HTTP请求
func (m *Monitor) RecordRequest(route, method string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route).Observe(seconds)
}

// RecordTradesReturned 记录返回的成交数，filter 为空表示未过滤
func (m *Monitor) RecordTradesReturned(filter string, n int) {
	if filter == "" {
		filter = "none"
	}
	m.tradesReturned.WithLabelValues(filter).Add(float64(n))
}

// RecordNotFound 记录一次空结果
func (m *Monitor) RecordNotFound(filter string) {
	m.filterMisses.WithLabelValues(filter).Inc()
}

// RecordConfigReload 记录配置热更新结果
func (m *Monitor) RecordConfigReload(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.configReloads.WithLabelValues(result).Inc()
}

// Handler 返回HTTP handler用于暴露指标
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry 返回prometheus registry
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}
