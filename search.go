package pbinfo

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SearchResult is one candidate returned by the site's search endpoint.
type SearchResult struct {
	// Value is the problem name as displayed by the site.
	Value string `json:"value"`

	// Label has the form "Problema #{id}: <strong>{name}</strong>".
	Label string `json:"label"`
}

// ProblemID extracts the problem id from the result's label.
func (r SearchResult) ProblemID() (int, error) {
	return ParseLabelID(r.Label)
}

// Searcher queries the site's search endpoint.
type Searcher interface {
	// Search returns the candidates for term in the order the site lists them.
	// Returns EMALFORMED if the response does not have the expected shape.
	Search(ctx context.Context, term string) ([]SearchResult, error)
}

// ParseLabelID parses the problem id out of a search label of the form
// "Problema #{id}: ...". Any other shape yields the same EMALFORMED error.
func ParseLabelID(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) < 2 || fields[0] != "Problema" {
		return 0, errLabelFormat()
	}

	raw := strings.NewReplacer("#", "", ":", "").Replace(fields[1])
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, strconv.IntSize-1)
	if err != nil {
		return 0, errLabelFormat()
	}
	return int(id), nil
}

func errLabelFormat() error {
	return Errorf(EMALFORMED, "the search label should be of the form `Problema #{id}: <strong>{name}</strong>`")
}

// SearchURL returns the address of the search endpoint queried for term.
func SearchURL(baseURL, term string) string {
	return strings.TrimSuffix(baseURL, "/") + "/php/ajax-search.php?term=" + url.QueryEscape(term)
}
