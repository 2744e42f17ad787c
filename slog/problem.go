package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pbinfo"
)

// Ensure LoggingProblemService implements pbinfo.ProblemService.
var _ pbinfo.ProblemService = (*LoggingProblemService)(nil)

// LoggingProblemService wraps a ProblemService with logging. Failures are
// logged with their error code so extraction breakage is easy to grep for.
type LoggingProblemService struct {
	next   pbinfo.ProblemService
	logger *slog.Logger
}

// NewLoggingProblemService creates a new LoggingProblemService.
func NewLoggingProblemService(next pbinfo.ProblemService, logger *slog.Logger) *LoggingProblemService {
	return &LoggingProblemService{next: next, logger: logger}
}

// FindProblemByID delegates to the wrapped service and logs the operation.
func (s *LoggingProblemService) FindProblemByID(ctx context.Context, id int) (p *pbinfo.Problem, err error) {
	defer func(begin time.Time) {
		s.log("find problem by id", begin, p, err, "id", id)
	}(time.Now())
	return s.next.FindProblemByID(ctx, id)
}

// FindProblemByName delegates to the wrapped service and logs the operation.
func (s *LoggingProblemService) FindProblemByName(ctx context.Context, name string) (p *pbinfo.Problem, err error) {
	defer func(begin time.Time) {
		s.log("find problem by name", begin, p, err, "name", name)
	}(time.Now())
	return s.next.FindProblemByName(ctx, name)
}

func (s *LoggingProblemService) log(msg string, begin time.Time, p *pbinfo.Problem, err error, args ...any) {
	args = append(args, "duration", time.Since(begin))
	if err != nil {
		args = append(args, "code", pbinfo.ErrorCode(err), "err", err)
		s.logger.Warn(msg, args...)
		return
	}
	args = append(args, "problem", p.Name, "grade", p.Grade)
	s.logger.Info(msg, args...)
}
