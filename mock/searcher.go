package mock

import (
	"context"

	"github.com/fwojciec/pbinfo"
)

var _ pbinfo.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of pbinfo.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, term string) ([]pbinfo.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, term string) ([]pbinfo.SearchResult, error) {
	return s.SearchFn(ctx, term)
}
