// Package regexp implements the page locator and metadata extractors with
// regular expressions over the raw page HTML. The page is treated as
// fixed-shape text rather than parsed into a DOM.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pbinfo"
)

// Ensure Locator implements pbinfo.PageLocator at compile time.
var _ pbinfo.PageLocator = (*Locator)(nil)

var (
	titleRe     = regexp.MustCompile(`<title>Problema (\w+) \| www\.pbinfo\.ro</title>`)
	statementRe = regexp.MustCompile(`(<h1>Cerin[țţ]a</h1>[\s\S]*?)</article>`)
	metaTableRe = regexp.MustCompile(`<table class="table table-bordered">([\s\S]*?)</table>`)
)

// Locator finds the title, statement and metadata table of a problem page.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the fragments of page the extractors need.
func (l *Locator) Locate(page string) (*pbinfo.PageFragments, error) {
	name, err := LocateName(page)
	if err != nil {
		return nil, err
	}
	problemText, err := LocateProblemText(page)
	if err != nil {
		return nil, err
	}
	metaText, err := LocateMetaText(page)
	if err != nil {
		return nil, err
	}
	return &pbinfo.PageFragments{
		Name:        name,
		ProblemText: problemText,
		MetaText:    metaText,
	}, nil
}

// LocateName returns the lower-cased problem name from the page title.
func LocateName(page string) (string, error) {
	m := titleRe.FindStringSubmatch(page)
	if m == nil {
		return "", pbinfo.Errorf(pbinfo.EPATTERN, "failed to locate the problem name in the HTML title")
	}
	return strings.ToLower(m[1]), nil
}

// LocateProblemText returns the statement, from the "Cerința" heading up
// to the closing article tag.
func LocateProblemText(page string) (string, error) {
	m := statementRe.FindStringSubmatch(page)
	if m == nil {
		return "", pbinfo.Errorf(pbinfo.EPATTERN, "failed to locate the problem text in the HTML")
	}
	return m[1], nil
}

// LocateMetaText returns the inner HTML of the first metadata table.
func LocateMetaText(page string) (string, error) {
	m := metaTableRe.FindStringSubmatch(page)
	if m == nil {
		return "", pbinfo.Errorf(pbinfo.EPATTERN, "failed to locate the problem metadata in the HTML")
	}
	return m[1], nil
}
