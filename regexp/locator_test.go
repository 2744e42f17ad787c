package regexp_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/pbinfo"
	pbregexp "github.com/fwojciec/pbinfo/regexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Locator implements pbinfo.PageLocator at compile time.
var _ pbinfo.PageLocator = (*pbregexp.Locator)(nil)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("locates all fragments", func(t *testing.T) {
		t.Parallel()

		page := readFixture(t, "arbore1.html")

		frags, err := pbregexp.NewLocator().Locate(page)
		require.NoError(t, err)

		assert.Equal(t, "arbore1", frags.Name)
		assert.True(t, strings.HasPrefix(frags.ProblemText, "<h1>Cerința</h1>"))
		assert.Contains(t, frags.ProblemText, "Date de intrare")
		assert.NotContains(t, frags.ProblemText, "</article>")
		assert.NotContains(t, frags.ProblemText, "Comentarii")
		assert.Contains(t, frags.MetaText, "arbore1.in / arbore1.out")
		assert.NotContains(t, frags.MetaText, "<table")
		assert.NotContains(t, frags.MetaText, "</table>")
	})

	t.Run("missing title is a pattern error", func(t *testing.T) {
		t.Parallel()

		page := strings.Replace(readFixture(t, "arbore1.html"), "<title>Problema Arbore1 | www.pbinfo.ro</title>", "<title>pbinfo</title>", 1)

		_, err := pbregexp.NewLocator().Locate(page)
		require.Error(t, err)
		assert.Equal(t, pbinfo.EPATTERN, pbinfo.ErrorCode(err))
		assert.Contains(t, pbinfo.ErrorMessage(err), "name")
	})

	t.Run("missing statement is a pattern error", func(t *testing.T) {
		t.Parallel()

		page := strings.Replace(readFixture(t, "arbore1.html"), "<h1>Cerința</h1>", "<h2>Cerința</h2>", 1)

		_, err := pbregexp.NewLocator().Locate(page)
		require.Error(t, err)
		assert.Equal(t, pbinfo.EPATTERN, pbinfo.ErrorCode(err))
		assert.Equal(t, "failed to locate the problem text in the HTML", pbinfo.ErrorMessage(err))
	})

	t.Run("missing metadata table is a pattern error", func(t *testing.T) {
		t.Parallel()

		page := strings.Replace(readFixture(t, "arbore1.html"), `class="table table-bordered"`, `class="table"`, 1)

		_, err := pbregexp.NewLocator().Locate(page)
		require.Error(t, err)
		assert.Equal(t, pbinfo.EPATTERN, pbinfo.ErrorCode(err))
		assert.Equal(t, "failed to locate the problem metadata in the HTML", pbinfo.ErrorMessage(err))
	})
}

func TestLocateName(t *testing.T) {
	t.Parallel()

	name, err := pbregexp.LocateName("<title>Problema SumaMax2 | www.pbinfo.ro</title>")
	require.NoError(t, err)
	assert.Equal(t, "sumamax2", name)

	_, err = pbregexp.LocateName("<title>problema sumamax2 | www.pbinfo.ro</title>")
	assert.Equal(t, pbinfo.EPATTERN, pbinfo.ErrorCode(err))
}

func TestLocateProblemText(t *testing.T) {
	t.Parallel()

	t.Run("accepts cedilla spelling", func(t *testing.T) {
		t.Parallel()

		text, err := pbregexp.LocateProblemText("<article><h1>Cerinţa</h1><p>x</p></article>")
		require.NoError(t, err)
		assert.Equal(t, "<h1>Cerinţa</h1><p>x</p>", text)
	})

	t.Run("stops at the first closing article", func(t *testing.T) {
		t.Parallel()

		text, err := pbregexp.LocateProblemText("<h1>Cerința</h1>a</article>b</article>")
		require.NoError(t, err)
		assert.Equal(t, "<h1>Cerința</h1>a", text)
	})
}
