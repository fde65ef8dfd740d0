package calc

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"time"
)

// loggingService decorates a calc.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Evaluate(ctx context.Context, expr Expression) (res Result, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Warn(s.logger)
		}
		logger.Log(
			"method", "evaluate",
			"op", expr.Op,
			"money", expr.Money,
			"operand", expr.Operand,
			"result", res.Money,
			"value", res.Value,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Evaluate(ctx, expr)
}
