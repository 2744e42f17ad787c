package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pbinfo"
	main "github.com/fwojciec/pbinfo/cmd/pbinfo"
	"github.com/fwojciec/pbinfo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists archived problems", func(t *testing.T) {
		t.Parallel()

		contest := pbinfo.DifficultyContest
		var gotFilter pbinfo.ProblemFilter
		store := &mock.ProblemStore{
			FindProblemsFn: func(_ context.Context, filter pbinfo.ProblemFilter) ([]*pbinfo.StoredProblem, error) {
				gotFilter = filter
				return []*pbinfo.StoredProblem{
					{
						Problem:   pbinfo.Problem{ID: 1691, Name: "arbore1", Metadata: pbinfo.Metadata{Grade: 11, Difficulty: &contest}},
						FetchedAt: time.Date(2026, 10, 19, 9, 15, 0, 0, time.UTC),
					},
				}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Store:  store,
		}

		err := (&main.ListCmd{Grade: 11, Limit: 5}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Grade)
		assert.Equal(t, 11, *gotFilter.Grade)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Contains(t, stdout.String(), "arbore1")
		assert.Contains(t, stdout.String(), "contest")
		assert.Contains(t, stdout.String(), "2026-10-19 09:15")
	})

	t.Run("shows helpful message when archive is empty", func(t *testing.T) {
		t.Parallel()

		store := &mock.ProblemStore{
			FindProblemsFn: func(_ context.Context, _ pbinfo.ProblemFilter) ([]*pbinfo.StoredProblem, error) {
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Store:  store,
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "pbinfo get --save")
	})
}
