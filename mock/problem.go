package mock

import (
	"context"

	"github.com/fwojciec/pbinfo"
)

var (
	_ pbinfo.ProblemService = (*ProblemService)(nil)
	_ pbinfo.ProblemStore   = (*ProblemStore)(nil)
)

// ProblemService is a mock implementation of pbinfo.ProblemService.
type ProblemService struct {
	FindProblemByIDFn   func(ctx context.Context, id int) (*pbinfo.Problem, error)
	FindProblemByNameFn func(ctx context.Context, name string) (*pbinfo.Problem, error)
}

func (s *ProblemService) FindProblemByID(ctx context.Context, id int) (*pbinfo.Problem, error) {
	return s.FindProblemByIDFn(ctx, id)
}

func (s *ProblemService) FindProblemByName(ctx context.Context, name string) (*pbinfo.Problem, error) {
	return s.FindProblemByNameFn(ctx, name)
}

// ProblemStore is a mock implementation of pbinfo.ProblemStore.
type ProblemStore struct {
	SaveProblemFn     func(ctx context.Context, p *pbinfo.Problem) (*pbinfo.StoredProblem, error)
	FindProblemByIDFn func(ctx context.Context, id int) (*pbinfo.StoredProblem, error)
	FindProblemsFn    func(ctx context.Context, filter pbinfo.ProblemFilter) ([]*pbinfo.StoredProblem, error)
	DeleteProblemFn   func(ctx context.Context, id int) error
}

func (s *ProblemStore) SaveProblem(ctx context.Context, p *pbinfo.Problem) (*pbinfo.StoredProblem, error) {
	return s.SaveProblemFn(ctx, p)
}

func (s *ProblemStore) FindProblemByID(ctx context.Context, id int) (*pbinfo.StoredProblem, error) {
	return s.FindProblemByIDFn(ctx, id)
}

func (s *ProblemStore) FindProblems(ctx context.Context, filter pbinfo.ProblemFilter) ([]*pbinfo.StoredProblem, error) {
	return s.FindProblemsFn(ctx, filter)
}

func (s *ProblemStore) DeleteProblem(ctx context.Context, id int) error {
	return s.DeleteProblemFn(ctx, id)
}
