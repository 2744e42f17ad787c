package goquery_test

import (
	"testing"

	"github.com/fwojciec/pbinfo"
	"github.com/fwojciec/pbinfo/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://www.pbinfo.ro"

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("keeps statement content", func(t *testing.T) {
		t.Parallel()

		statement := `<h1>Cerința</h1>
<p>Se dă un arbore cu <code>n</code> noduri.</p>
<h1>Date de intrare</h1>
<p>Fișierul de intrare <code>arbore1.in</code> conține numărul <code>n</code>.</p>`

		cleaned, err := goquery.NewCleaner().Clean(statement, baseURL)

		require.NoError(t, err)
		assert.Contains(t, cleaned, "<h1>Cerința</h1>")
		assert.Contains(t, cleaned, "<h1>Date de intrare</h1>")
		assert.Contains(t, cleaned, "<code>arbore1.in</code>")
		assert.NotContains(t, cleaned, "<body>")
	})

	t.Run("removes scripts styles and forms", func(t *testing.T) {
		t.Parallel()

		statement := `<h1>Cerința</h1>
<script>MathJax.Hub.Queue(["Typeset"]);</script>
<style>.x { color: red; }</style>
<p>Calculați suma.</p>
<form action="/php/submit.php"><textarea name="sursa"></textarea><button>Trimite</button></form>
<noscript>Activați JavaScript</noscript>`

		cleaned, err := goquery.NewCleaner().Clean(statement, baseURL)

		require.NoError(t, err)
		assert.Contains(t, cleaned, "Calculați suma.")
		assert.NotContains(t, cleaned, "MathJax")
		assert.NotContains(t, cleaned, "color: red")
		assert.NotContains(t, cleaned, "Trimite")
		assert.NotContains(t, cleaned, "<form")
		assert.NotContains(t, cleaned, "Activați JavaScript")
	})

	t.Run("removes comments at any depth", func(t *testing.T) {
		t.Parallel()

		statement := `<h1>Cerința</h1><!-- top --><div><p>Text<!-- nested --></p></div>`

		cleaned, err := goquery.NewCleaner().Clean(statement, baseURL)

		require.NoError(t, err)
		assert.NotContains(t, cleaned, "top")
		assert.NotContains(t, cleaned, "nested")
		assert.Contains(t, cleaned, "Text")
	})

	t.Run("resolves relative image and link references", func(t *testing.T) {
		t.Parallel()

		statement := `<h1>Cerința</h1>
<p><img src="/images/probleme/1691/arbore.png" alt="arbore"></p>
<p>Vezi <a href="/probleme/1">suma</a>, <a href="#exemplu">exemplul</a> și <a href="mailto:a@b.ro">contact</a>.</p>
<p><a href="https://example.com/x">extern</a></p>`

		cleaned, err := goquery.NewCleaner().Clean(statement, baseURL)

		require.NoError(t, err)
		assert.Contains(t, cleaned, `src="https://www.pbinfo.ro/images/probleme/1691/arbore.png"`)
		assert.Contains(t, cleaned, `href="https://www.pbinfo.ro/probleme/1"`)
		assert.Contains(t, cleaned, `href="#exemplu"`)
		assert.Contains(t, cleaned, `href="mailto:a@b.ro"`)
		assert.Contains(t, cleaned, `href="https://example.com/x"`)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewCleaner().Clean("  ", baseURL)

		require.Error(t, err)
		assert.Equal(t, pbinfo.EINVALID, pbinfo.ErrorCode(err))
	})

	t.Run("returns error for relative base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewCleaner().Clean("<p>x</p>", "/probleme")

		require.Error(t, err)
		assert.Equal(t, pbinfo.EINVALID, pbinfo.ErrorCode(err))
	})
}
