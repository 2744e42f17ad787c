package pbinfo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pbinfo"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pbinfo.Errorf(pbinfo.EPATTERN, "failed to locate the %s in the HTML", "grade")

	assert.Equal(t, pbinfo.EPATTERN, pbinfo.ErrorCode(err))
	assert.Equal(t, "failed to locate the grade in the HTML", pbinfo.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pbinfo.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pbinfo.ErrorMessage(nil))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()

		err := &pbinfo.UnknownIDError{ID: 1691}

		assert.Equal(t, pbinfo.ENOTFOUND, pbinfo.ErrorCode(err))
		assert.Equal(t, "unknown problem id 1691", pbinfo.ErrorMessage(err))
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		t.Parallel()

		err := &pbinfo.UnknownNameError{Name: "arbore", Suggestions: []string{"Arbore1", "Arbore2"}}

		assert.Equal(t, pbinfo.ENOTFOUND, pbinfo.ErrorCode(err))
		assert.Contains(t, pbinfo.ErrorMessage(err), "Arbore1, Arbore2")
	})

	t.Run("field error keeps the wrapped code", func(t *testing.T) {
		t.Parallel()

		err := &pbinfo.FieldError{Field: "grade", Err: pbinfo.Errorf(pbinfo.EPARSE, "bad grade")}

		assert.Equal(t, pbinfo.EPARSE, pbinfo.ErrorCode(err))
		assert.Equal(t, "bad grade", pbinfo.ErrorMessage(err))
		assert.Contains(t, err.Error(), "grade: ")
	})

	t.Run("wrapped errors are unwrapped", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetch 12: %w", &pbinfo.UnknownIDError{ID: 12})

		var idErr *pbinfo.UnknownIDError
		assert.True(t, errors.As(err, &idErr))
		assert.Equal(t, 12, idErr.ID)
		assert.Equal(t, pbinfo.ENOTFOUND, pbinfo.ErrorCode(err))
	})

	t.Run("other errors are internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, pbinfo.EINTERNAL, pbinfo.ErrorCode(err))
		assert.Equal(t, "Internal error", pbinfo.ErrorMessage(err))
	})
}
