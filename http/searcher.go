package http

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/pbinfo"
)

// Ensure Searcher implements pbinfo.Searcher at compile time.
var _ pbinfo.Searcher = (*Searcher)(nil)

// Searcher queries the site's ajax search endpoint.
type Searcher struct {
	fetcher pbinfo.Fetcher
	baseURL string
}

// NewSearcher creates a Searcher that issues requests through fetcher
// against the site at baseURL.
func NewSearcher(fetcher pbinfo.Fetcher, baseURL string) *Searcher {
	if baseURL == "" {
		baseURL = pbinfo.DefaultBaseURL
	}
	return &Searcher{fetcher: fetcher, baseURL: baseURL}
}

// Search returns the candidates the site lists for term.
// The endpoint answers with an array of objects whose values are all
// strings; every object must carry a "value" key. A missing "label" is left
// empty. Any other shape, including a bare null, is EMALFORMED. A missing
// endpoint is a network failure, not an unknown problem.
func (s *Searcher) Search(ctx context.Context, term string) ([]pbinfo.SearchResult, error) {
	body, err := s.fetcher.Fetch(ctx, pbinfo.SearchURL(s.baseURL, term))
	if pbinfo.ErrorCode(err) == pbinfo.ENOTFOUND {
		return nil, pbinfo.Errorf(pbinfo.ENETWORK, "search endpoint unavailable: %s", pbinfo.ErrorMessage(err))
	} else if err != nil {
		return nil, err
	}

	var records []map[string]*string
	if err := json.Unmarshal([]byte(body), &records); err != nil {
		return nil, pbinfo.Errorf(pbinfo.EMALFORMED, "could not parse the search response: %v", err)
	}
	if records == nil {
		return nil, pbinfo.Errorf(pbinfo.EMALFORMED, "search response should be an array")
	}

	results := make([]pbinfo.SearchResult, 0, len(records))
	for _, rec := range records {
		for key, v := range rec {
			if v == nil {
				return nil, pbinfo.Errorf(pbinfo.EMALFORMED, "search result attribute %q should be a string", key)
			}
		}
		value, ok := rec["value"]
		if !ok {
			return nil, pbinfo.Errorf(pbinfo.EMALFORMED, "search results should contain the 'value' attribute")
		}
		var label string
		if l, ok := rec["label"]; ok {
			label = *l
		}
		results = append(results, pbinfo.SearchResult{Value: *value, Label: label})
	}

	return results, nil
}
