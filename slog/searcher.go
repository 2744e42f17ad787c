package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pbinfo"
)

// Ensure LoggingSearcher implements pbinfo.Searcher.
var _ pbinfo.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   pbinfo.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next pbinfo.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, term string) (results []pbinfo.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"term", term,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, term)
}
