// Package scrape implements pbinfo.ProblemService on top of a Fetcher, a
// Searcher and the page extractors. Each call is synchronous: fetching by
// id issues one request, fetching by name issues two.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/pbinfo"
)

// Ensure Scraper implements pbinfo.ProblemService at compile time.
var _ pbinfo.ProblemService = (*Scraper)(nil)

// Scraper fetches problem pages and extracts their metadata.
type Scraper struct {
	Fetcher   pbinfo.Fetcher
	Searcher  pbinfo.Searcher
	Locator   pbinfo.PageLocator
	Extractor pbinfo.MetadataExtractor

	// BaseURL is the site address. Defaults to pbinfo.DefaultBaseURL.
	BaseURL string
}

func (s *Scraper) baseURL() string {
	if s.BaseURL == "" {
		return pbinfo.DefaultBaseURL
	}
	return s.BaseURL
}

// FindProblemByID fetches the problem page for id and extracts it.
func (s *Scraper) FindProblemByID(ctx context.Context, id int) (*pbinfo.Problem, error) {
	if id <= 0 {
		return nil, pbinfo.Errorf(pbinfo.EINVALID, "problem id must be positive, got %d", id)
	}

	page, err := s.Fetcher.Fetch(ctx, pbinfo.ProblemURL(s.baseURL(), id))
	if pbinfo.ErrorCode(err) == pbinfo.ENOTFOUND {
		return nil, &pbinfo.UnknownIDError{ID: id}
	} else if err != nil {
		return nil, err
	}

	return s.Parse(id, page)
}

// FindProblemByName searches for name and fetches the first candidate whose
// name matches exactly, ignoring case. A label carrying id 0 names no page,
// so it is reported as *pbinfo.UnknownIDError without a fetch.
func (s *Scraper) FindProblemByName(ctx context.Context, name string) (*pbinfo.Problem, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, pbinfo.Errorf(pbinfo.EINVALID, "problem name required")
	}

	candidates, err := s.Searcher.Search(ctx, name)
	if err != nil {
		return nil, err
	}

	id, err := MatchCandidate(name, candidates)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, &pbinfo.UnknownIDError{ID: id}
	}

	return s.FindProblemByID(ctx, id)
}

// MatchCandidate returns the id of the first candidate whose lower-cased
// value equals name. With no match it returns *pbinfo.UnknownNameError
// listing every candidate value in order.
func MatchCandidate(name string, candidates []pbinfo.SearchResult) (int, error) {
	for _, c := range candidates {
		if strings.ToLower(c.Value) != name {
			continue
		}
		if c.Label == "" {
			return 0, pbinfo.Errorf(pbinfo.EMALFORMED, "search result %q should contain the 'label' attribute", c.Value)
		}
		return c.ProblemID()
	}

	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.Value)
	}
	return 0, &pbinfo.UnknownNameError{Name: name, Suggestions: suggestions}
}

// Parse builds a problem from the raw page fetched for id.
func (s *Scraper) Parse(id int, page string) (*pbinfo.Problem, error) {
	frags, err := s.Locator.Locate(page)
	if err != nil {
		return nil, err
	}

	meta, err := s.Extractor.ExtractMetadata(frags.MetaText)
	if err != nil {
		return nil, err
	}

	return &pbinfo.Problem{
		ID:          id,
		Name:        frags.Name,
		ProblemText: frags.ProblemText,
		MetaText:    frags.MetaText,
		Metadata:    *meta,
	}, nil
}

// Mismatch describes an archived problem whose stored fields differ from
// what extraction yields over its stored metadata fragment.
type Mismatch struct {
	ID     int
	Stored pbinfo.Metadata
	Actual pbinfo.Metadata
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("problem %d: stored metadata differs from re-extracted metadata", m.ID)
}

// Verify re-runs extraction over p.MetaText and reports a *Mismatch if the
// result differs from the fields stored on p.
func Verify(extractor pbinfo.MetadataExtractor, p *pbinfo.Problem) error {
	actual, err := extractor.ExtractMetadata(p.MetaText)
	if err != nil {
		return fmt.Errorf("problem %d: %w", p.ID, err)
	}
	if !p.Metadata.Equal(*actual) {
		return &Mismatch{ID: p.ID, Stored: p.Metadata, Actual: *actual}
	}
	return nil
}

// IsMismatch reports whether err is a verification mismatch.
func IsMismatch(err error) bool {
	var m *Mismatch
	return errors.As(err, &m)
}
