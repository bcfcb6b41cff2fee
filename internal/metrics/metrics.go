package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const namespace = "course_service"

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database metrics
	DBConnectionsOpen  prometheus.Gauge
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBConnectionsMax   prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec

	// External API metrics
	ExternalAPIRequestDuration *prometheus.HistogramVec
	ExternalAPIRequestsTotal   *prometheus.CounterVec
	ExternalAPIErrors          *prometheus.CounterVec

	// Business metrics
	CoursesTotal         prometheus.Gauge
	VideosTotal          prometheus.Gauge
	PaidPaymentsTotal    prometheus.Gauge
	CourseCreatedTotal   prometheus.Counter
	PaymentSettledTotal  prometheus.Counter
	LifecycleTransitions *prometheus.CounterVec

	logger *zap.Logger
}

// New creates and registers all metrics with the default registry
func New(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := builder{factory: promauto.With(registerer)}

	return &Metrics{
		HTTPRequestsTotal:   b.counterVec("http_requests_total", "Total number of HTTP requests", "method", "endpoint", "status"),
		HTTPRequestDuration: b.histogramVec("http_request_duration_seconds", "HTTP request duration in seconds", httpBuckets, "method", "endpoint"),

		DBConnectionsOpen:  b.gauge("db_connections_open", "Current number of open database connections"),
		DBConnectionsInUse: b.gauge("db_connections_in_use", "Current number of in-use database connections"),
		DBConnectionsIdle:  b.gauge("db_connections_idle", "Current number of idle database connections"),
		DBConnectionsMax:   b.gauge("db_connections_max", "Maximum number of open database connections configured"),
		DBQueryDuration:    b.histogramVec("db_query_duration_seconds", "Database query duration in seconds", dbBuckets, "operation", "table"),
		DBQueryErrors:      b.counterVec("db_query_errors_total", "Total number of database query errors", "operation", "table"),

		ExternalAPIRequestDuration: b.histogramVec("external_api_request_duration_seconds", "Media provider request duration in seconds", externalBuckets, "endpoint", "status"),
		ExternalAPIRequestsTotal:   b.counterVec("external_api_requests_total", "Total number of media provider requests", "endpoint", "method", "status"),
		ExternalAPIErrors:          b.counterVec("external_api_errors_total", "Total number of failed media provider requests", "endpoint", "error_type"),

		CoursesTotal:         b.gauge("courses_total", "Number of courses that are not soft-deleted"),
		VideosTotal:          b.gauge("videos_total", "Number of videos that are not soft-deleted"),
		PaidPaymentsTotal:    b.gauge("paid_payments_total", "Number of settled payments"),
		CourseCreatedTotal:   b.counter("course_created_total", "Total number of course creation events"),
		PaymentSettledTotal:  b.counter("payment_settled_total", "Total number of payments moved to paid"),
		LifecycleTransitions: b.counterVec("lifecycle_transitions_total", "Lifecycle transitions by entity, transition and outcome", "entity", "transition", "result"),

		logger: logger,
	}
}

var (
	httpBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	dbBuckets       = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	externalBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
)

// builder registers collectors under the service namespace
type builder struct {
	factory promauto.Factory
}

func (b builder) gauge(name, help string) prometheus.Gauge {
	return b.factory.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
}

func (b builder) counter(name, help string) prometheus.Counter {
	return b.factory.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
}

func (b builder) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return b.factory.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
}

func (b builder) histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return b.factory.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: name, Help: help, Buckets: buckets}, labels)
}

// safeExecute wraps metric operations with panic recovery
func (m *Metrics) safeExecute(operation string, fn func()) {
	if m == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
