package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pbinfo"
	main "github.com/fwojciec/pbinfo/cmd/pbinfo"
	"github.com/fwojciec/pbinfo/mock"
	pbregexp "github.com/fwojciec/pbinfo/regexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// archived parses a fixture page into a stored problem.
func archived(t *testing.T, id int, page string) *pbinfo.StoredProblem {
	t.Helper()
	frags, err := pbregexp.NewLocator().Locate(readPage(t, page))
	require.NoError(t, err)
	meta, err := pbregexp.NewExtractor().ExtractMetadata(frags.MetaText)
	require.NoError(t, err)
	return &pbinfo.StoredProblem{Problem: pbinfo.Problem{
		ID:          id,
		Name:        frags.Name,
		ProblemText: frags.ProblemText,
		MetaText:    frags.MetaText,
		Metadata:    *meta,
	}}
}

func TestVerifyCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("flags a tampered row", func(t *testing.T) {
		t.Parallel()

		good := archived(t, 1, "suma.html")
		tampered := archived(t, 1691, "arbore1.html")
		tampered.Grade = 10

		store := &mock.ProblemStore{
			FindProblemsFn: func(_ context.Context, _ pbinfo.ProblemFilter) ([]*pbinfo.StoredProblem, error) {
				return []*pbinfo.StoredProblem{good, tampered}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Store:     store,
			Extractor: pbregexp.NewExtractor(),
		}

		err := (&main.VerifyCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "ok")
		assert.Contains(t, stdout.String(), "changed")
		assert.Contains(t, stdout.String(), `grade: stored "10", extracted "11"`)
	})

	t.Run("verifies only the given ids", func(t *testing.T) {
		t.Parallel()

		var looked []int
		store := &mock.ProblemStore{
			FindProblemByIDFn: func(_ context.Context, id int) (*pbinfo.StoredProblem, error) {
				looked = append(looked, id)
				return archived(t, id, "suma.html"), nil
			},
		}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Store:     store,
			Extractor: pbregexp.NewExtractor(),
		}

		err := (&main.VerifyCmd{IDs: []int{1, 3}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, looked)
	})

	t.Run("reports a missing id", func(t *testing.T) {
		t.Parallel()

		store := &mock.ProblemStore{
			FindProblemByIDFn: func(_ context.Context, id int) (*pbinfo.StoredProblem, error) {
				return nil, pbinfo.Errorf(pbinfo.ENOTFOUND, "problem %d not archived", id)
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Store:     store,
			Extractor: pbregexp.NewExtractor(),
		}

		err := (&main.VerifyCmd{IDs: []int{5}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, pbinfo.ENOTFOUND, pbinfo.ErrorCode(err))
		assert.Contains(t, stderr.String(), "problem 5 not archived")
	})
}
