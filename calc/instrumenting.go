package calc

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
	"wizmon"
)

// instrumentingService decorates a calc.Service with Prometheus metrics
type instrumentingService struct {
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	next           Service
}

// NewInstrumentingService returns a Service recording evaluations on reg.
// A nil reg records without registering.
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	factory := promauto.With(reg)
	return &instrumentingService{
		requestCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wizmon",
			Subsystem: "calc",
			Name:      "evaluations_total",
			Help:      "Number of evaluated expressions by operation and outcome.",
		}, []string{"op", "outcome"}),
		requestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wizmon",
			Subsystem: "calc",
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating expressions.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"op"}),
		next: s,
	}
}

func (s *instrumentingService) Evaluate(ctx context.Context, expr Expression) (res Result, err error) {
	defer func(begin time.Time) {
		op := string(expr.Op)
		if !expr.Op.Known() {
			op = "unknown"
		}
		s.requestCount.WithLabelValues(op, outcome(err)).Inc()
		s.requestLatency.WithLabelValues(op).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Evaluate(ctx, expr)
}

// outcome a bounded label value for err
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, wizmon.ErrInvalidOperand):
		return "invalid_operand"
	case errors.Is(err, wizmon.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, wizmon.ErrUnknownOp):
		return "unknown_op"
	default:
		return "error"
	}
}
