// Package goquery prepares problem statement HTML for rendering.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pbinfo"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements pbinfo.StatementCleaner at compile time.
var _ pbinfo.StatementCleaner = (*Cleaner)(nil)

// removeSelector matches markup that carries no statement content.
const removeSelector = "script, style, noscript, form, iframe, button, input, select, textarea"

// Cleaner strips non-content markup from statement HTML.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes scripts, styles, forms and comments from the statement and
// rewrites relative src and href attributes to absolute URLs under baseURL.
func (c *Cleaner) Clean(statement string, baseURL string) (string, error) {
	if strings.TrimSpace(statement) == "" {
		return "", pbinfo.Errorf(pbinfo.EINVALID, "empty statement HTML")
	}

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return "", pbinfo.Errorf(pbinfo.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(statement))
	if err != nil {
		return "", pbinfo.Errorf(pbinfo.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(removeSelector).Remove()
	removeComments(doc.Selection)

	resolveAttr(doc, base, "img[src]", "src")
	resolveAttr(doc, base, "a[href]", "href")

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", pbinfo.Errorf(pbinfo.EINTERNAL, "failed to render HTML: %v", err)
	}
	return strings.TrimSpace(body), nil
}

// removeComments drops every comment node below sel.
func removeComments(sel *goquery.Selection) {
	sel.Find("*").Contents().FilterFunction(func(_ int, s *goquery.Selection) bool {
		return len(s.Nodes) > 0 && s.Nodes[0].Type == html.CommentNode
	}).Remove()
}

// resolveAttr rewrites attr on every element matching selector to an
// absolute URL. Fragment-only and non-HTTP references are left untouched.
func resolveAttr(doc *goquery.Document, base *url.URL, selector, attr string) {
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		ref, _ := s.Attr(attr)
		ref = strings.TrimSpace(ref)
		if ref == "" || strings.HasPrefix(ref, "#") || isNonHTTPLink(ref) {
			return
		}
		u, err := url.Parse(ref)
		if err != nil {
			return
		}
		s.SetAttr(attr, base.ResolveReference(u).String())
	})
}

// isNonHTTPLink checks if a reference uses a scheme that should not be resolved.
func isNonHTTPLink(ref string) bool {
	ref = strings.ToLower(ref)
	return strings.HasPrefix(ref, "javascript:") ||
		strings.HasPrefix(ref, "mailto:") ||
		strings.HasPrefix(ref, "tel:") ||
		strings.HasPrefix(ref, "data:")
}
