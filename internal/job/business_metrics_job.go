package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"course-marketplace-api/internal/metrics"
)

// CatalogCounter reports the totals exported as business gauges
type CatalogCounter interface {
	CountCourses(ctx context.Context) (int64, error)
	CountVideos(ctx context.Context) (int64, error)
	CountPaidPayments(ctx context.Context) (int64, error)
}

// BusinessMetricsJob refreshes the catalog and payment gauges
type BusinessMetricsJob struct {
	counter CatalogCounter
	metrics *metrics.Metrics
	logger  *zap.Logger
	timeout time.Duration
}

// NewBusinessMetricsJob creates a new BusinessMetricsJob instance
func NewBusinessMetricsJob(counter CatalogCounter, m *metrics.Metrics, logger *zap.Logger) *BusinessMetricsJob {
	return &BusinessMetricsJob{
		counter: counter,
		metrics: m,
		logger:  logger,
		timeout: 30 * time.Second,
	}
}

// Run executes the job. A failing count leaves its gauge at the previous value.
func (j *BusinessMetricsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	gauges := []struct {
		name  string
		count func(context.Context) (int64, error)
		set   func(int64)
	}{
		{"courses", j.counter.CountCourses, j.metrics.SetCoursesTotal},
		{"videos", j.counter.CountVideos, j.metrics.SetVideosTotal},
		{"paid_payments", j.counter.CountPaidPayments, j.metrics.SetPaidPaymentsTotal},
	}

	failed := 0
	for _, g := range gauges {
		n, err := g.count(ctx)
		if err != nil {
			failed++
			j.logger.Error("Failed to collect business metric", zap.String("metric", g.name), zap.Error(err))
			continue
		}
		g.set(n)
	}

	j.logger.Debug("Business metrics collected", zap.Int("failed", failed))
}
